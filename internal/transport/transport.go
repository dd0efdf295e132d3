// Package transport carries protocol messages between the hub and its
// clients over QUIC.
package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"

	"github.com/quic-go/quic-go"
)

// Transport owns one UDP socket used both to accept and to dial QUIC
// connections.
type Transport struct {
	conn       *net.UDPConn
	listener   *quic.Listener
	quicConfig *quic.Config
	tlsConfig  *tls.Config
	tr         *quic.Transport
}

func NewTransport(addr string) (*Transport, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", addr, err)
	}

	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}

	tlsConf, err := tlsConfig()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	quicConf := quicConfig()

	tr := &quic.Transport{Conn: conn}
	listener, err := tr.Listen(tlsConf, quicConf)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("starting quic listener: %w", err)
	}

	return &Transport{
		conn:       conn,
		listener:   listener,
		quicConfig: quicConf,
		tlsConfig:  tlsConf,
		tr:         tr,
	}, nil
}

func (t *Transport) Accept(ctx context.Context) (*Link, error) {
	conn, err := t.listener.Accept(ctx)
	if err != nil {
		return nil, err
	}
	return NewLink(conn), nil
}

func (t *Transport) Close() error {
	_ = t.listener.Close()
	err := t.tr.Close()
	if cerr := t.conn.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
		return cerr
	}
	return err
}

func (t *Transport) Dial(ctx context.Context, addr string) (*Link, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", addr, err)
	}

	conn, err := t.tr.Dial(ctx, udpAddr, t.tlsConfig, t.quicConfig)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	return NewLink(conn), nil
}

func (t *Transport) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}
