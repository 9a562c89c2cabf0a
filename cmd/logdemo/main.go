// Command logdemo exercises the logging façade from a few example call
// sites: a plain function, an instance type, a package-level helper and a
// nested error published from main.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Station-Manager/logfacade"
)

func main() {
	log, err := logfacade.New(logfacade.WithAppConfigPath(appConfigPath()))
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Close() }()

	log.InfoFn(func() string { return "Start" })
	log.WarnFn(func() string { return "Testing special characters: áéíóúüñ ÁÉÍÓÚÜÑ" })
	initialise(log)

	NewInstance(log).Start()
	if err := bar(); err != nil {
		_ = log.PublishError(err, "Error returned from bar")
	}

	log.Error("Hey this is an error!")
	log.Info("Application [{0}] End", "logdemo")
}

func appConfigPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "logdemo.yaml"
}

func initialise(log logfacade.Logger) {
	// Not required; it skips building the closure when Debug is off.
	if log.IsDebugEnabled() {
		log.DebugFn(func() string { return "This is a debug message" })
	}
}

func bar() error {
	return goo()
}

func goo() error {
	if err := foo(); err != nil {
		return fmt.Errorf("failed in goo calling foo: %w", err)
	}
	return nil
}

func foo() error {
	return errors.New("this is an error")
}
