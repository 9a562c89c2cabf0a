package main

import "github.com/Station-Manager/logfacade"

// Instance logs from its methods; entries carry class "Instance".
type Instance struct {
	log logfacade.Logger
}

func NewInstance(log logfacade.Logger) *Instance {
	log.DebugFn(func() string { return "Constructor" })
	return &Instance{log: log}
}

func (i *Instance) Start() {
	i.log.DebugFn(func() string { return "Starting" })
	registerOnce(i.log)
}

// registerOnce is a package-level function; entries carry class "main".
func registerOnce(log logfacade.Logger) {
	log.Info("Registering {0} handler(s)", 1)
}
