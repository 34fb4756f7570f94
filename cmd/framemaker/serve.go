package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/example/framemaker/internal/server"
)

type serveCmd struct {
	*root
	fs    *flag.FlagSet
	addr  string
	debug bool
}

func (c *serveCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseServeCmd(args []string, r *root) (*serveCmd, error) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	c := &serveCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.addr, "addr", c.cfg().Server.Addr, "listen address")
	fs.BoolVar(&c.debug, "debug", false, "gin debug mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *serveCmd) Run() error {
	if c.debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(c.cfg(), c.logger()).ListenAndServe(ctx, c.addr)
}
