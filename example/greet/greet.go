// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/yeetrun/argkit/pkg/argparse"
	"github.com/yeetrun/argkit/pkg/cli"
)

var helloCmd = &cli.Command{
	Command: argparse.Command{
		Name:        "hello",
		Description: "Print a greeting",
		Options: []argparse.Option{
			{Name: "greeting", Short: "g", Description: "Greeting word", Type: argparse.TypeString, Default: "Hello", Choices: []any{"Hello", "Hi", "Howdy"}},
			{Name: "times", Short: "n", Description: "How many times to greet", Type: argparse.TypeNumber, Default: 1},
			{Name: "shout", Short: "s", Description: "Upper-case the greeting", Type: argparse.TypeBoolean},
		},
		Args: []argparse.Argument{
			{Name: "names", Description: "Who to greet", Type: argparse.TypeString, Variadic: true, Default: []any{"World"}},
		},
	},
	Action: func(_ context.Context, c *cli.Context) error {
		msg := greeting(c.Options.String("greeting"), c.Args.Strings("names"), c.Options.Bool("shout"))
		for range int(c.Options.Number("times")) {
			fmt.Fprintln(c.Stdout, msg)
		}
		return nil
	},
}

var serveCmd = &cli.Command{
	Command: argparse.Command{
		Name:        "serve",
		Description: "Serve a greeting over HTTP",
		Options: []argparse.Option{
			{Name: "addr", Short: "a", Description: "Listen address", Type: argparse.TypeString, Default: ":8080"},
		},
	},
	Action: func(ctx context.Context, c *cli.Context) error {
		srv := &http.Server{
			Addr: c.Options.String("addr"),
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				name := r.URL.Query().Get("name")
				if name == "" {
					name = "World"
				}
				fmt.Fprintln(w, greeting("Hello", []string{name}, false))
			}),
		}
		go func() {
			<-ctx.Done()
			srv.Close()
		}()
		fmt.Fprintf(c.Stderr, "listening on %s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func greeting(word string, names []string, shout bool) string {
	msg := fmt.Sprintf("%s, %s!", word, strings.Join(names, " and "))
	if shout {
		msg = strings.ToUpper(msg)
	}
	return msg
}

func main() {
	c, err := cli.New(cli.Config{
		Name:        "greet",
		Version:     "1.0.0",
		Description: "Greets people",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
	c.MustRegister(helloCmd, serveCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := c.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
