// Package kickstart runs a small init / loop / shutdown application lifecycle
// with SIGINT/SIGTERM handling, pacing the loop on a fixed interval.
package kickstart

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type StepFunc[T any] func(*Context[T]) error

// Context carries the application state between lifecycle steps. A loop step
// may set Next to LoopBreak to stop the application.
type Context[T any] struct {
	App  T
	Next LoopState
}

type LoopState int

const (
	LoopContinue LoopState = iota
	LoopBreak
)

type App[T any] struct {
	initFn     StepFunc[T]
	loopFn     StepFunc[T]
	shutdownFn StepFunc[T]
	interval   time.Duration
}

func Init[T any](initFn StepFunc[T]) *App[T] {
	return &App[T]{
		initFn:   initFn,
		interval: time.Second,
	}
}

func (app *App[T]) Loop(loopFn StepFunc[T]) *App[T] {
	app.loopFn = loopFn

	return app
}

func (app *App[T]) Every(interval time.Duration) *App[T] {
	app.interval = interval

	return app
}

func (app *App[T]) Then(shutdownFn StepFunc[T]) *App[T] {
	app.shutdownFn = shutdownFn

	return app
}

// Exec runs init, then the loop once per interval until the loop breaks, the
// loop errors, or the process receives SIGINT/SIGTERM. The shutdown step runs
// even when the loop fails.
func (app *App[T]) Exec() error {
	stopRun := make(chan os.Signal, 1)
	signal.Notify(stopRun, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stopRun)

	ctx := Context[T]{}

	if err := app.initFn(&ctx); err != nil {
		return fmt.Errorf("kickstart: init: %w", err)
	}

	loopErr := app.runLoop(&ctx, stopRun)

	if app.shutdownFn != nil {
		if err := app.shutdownFn(&ctx); err != nil && loopErr == nil {
			return fmt.Errorf("kickstart: shutdown: %w", err)
		}
	}

	return loopErr
}

func (app *App[T]) runLoop(ctx *Context[T], stopRun <-chan os.Signal) error {
	if app.loopFn == nil {
		return nil
	}

	ticker := time.NewTicker(app.interval)
	defer ticker.Stop()

	for {
		if err := app.loopFn(ctx); err != nil {
			return fmt.Errorf("kickstart: loop: %w", err)
		}

		if ctx.Next == LoopBreak {
			return nil
		}

		select {
		case <-stopRun:
			return nil
		case <-ticker.C:
		}
	}
}
