// fixctl is a small FIX order-entry client: it connects to the configured
// endpoint, logs on, optionally submits one limit order, and prints inbound
// messages until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/xid"
	"github.com/shopspring/decimal"

	"github.com/tradewire/go-fix/dictionary"
	"github.com/tradewire/go-fix/fix"
	"github.com/tradewire/go-fix/logger"
	"github.com/tradewire/go-fix/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fixctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "fixctl.toml", "path to the fixctl configuration file")
	symbol := flag.String("symbol", "", "submit a limit order for this symbol")
	side := flag.String("side", "1", "order side (1=buy, 2=sell)")
	qty := flag.String("qty", "", "order quantity")
	price := flag.String("price", "", "limit price")
	flag.Parse()

	cfg, err := loadClientConfig(*configPath)
	if err != nil {
		return err
	}

	logger.SetLevel(cfg.logLevel)

	dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}

	opts := []session.Option{
		session.WithHeartbeatInterval(cfg.heartbeat),
	}
	if cfg.beginString != "" {
		opts = append(opts, session.WithBeginString(cfg.beginString))
	}
	if cfg.targetCompID != "" {
		opts = append(opts, session.WithTargetCompID(cfg.targetCompID))
	}

	sessCfg, err := session.NewConfig(cfg.host, cfg.port, opts...)
	if err != nil {
		return err
	}

	sess, err := session.New(context.Background(), sessCfg, cfg.creds, dict)
	if err != nil {
		return err
	}

	if err := sess.Open(); err != nil {
		return err
	}
	defer func() {
		_ = sess.Close()
		sess.Wait()
	}()

	if *symbol != "" {
		body, err := orderBody(*symbol, *side, *qty, *price)
		if err != nil {
			return err
		}
		if err := sess.Send(fix.MsgTypeNewOrderSingle, body); err != nil {
			return err
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case msg, ok := <-sess.Inbound():
			if !ok {
				return nil
			}
			printMessage(msg)
		case <-sigCh:
			return nil
		}
	}
}

func loadDictionary(cfg clientConfig) (fix.Dictionary, error) {
	if cfg.dictionaryPath == "" {
		return dictionary.FIX42(), nil
	}
	return dictionary.LoadFile(cfg.dictionaryPath)
}

func orderBody(symbol, side, qty, price string) (fix.FieldMap, error) {
	orderQty, err := decimal.NewFromString(qty)
	if err != nil {
		return nil, fmt.Errorf("parse qty: %w", err)
	}
	limitPrice, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}

	return fix.FieldMap{
		"ClOrdID":     fix.String(xid.New().String()),
		"Symbol":      fix.String(symbol),
		"Side":        fix.String(side),
		"OrdType":     fix.String("2"), // limit
		"OrderQty":    fix.Decimal(orderQty),
		"Price":       fix.Decimal(limitPrice),
		"TimeInForce": fix.String("1"), // GTC
	}, nil
}

func printMessage(msg *fix.Message) {
	fmt.Printf("<- %s", msg.MsgType())
	for name, v := range msg.Body {
		fmt.Printf(" %s=%s", name, v.Wire())
	}
	fmt.Println()
}
