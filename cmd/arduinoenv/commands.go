package main

import (
	"arduinoenv/cmd/arduinoenv/doctor"
	"arduinoenv/cmd/arduinoenv/drivers"
	"arduinoenv/cmd/arduinoenv/history"
	"arduinoenv/cmd/arduinoenv/paths"
	"arduinoenv/cmd/arduinoenv/prefs"
	"arduinoenv/cmd/arduinoenv/tools"
)

func init() {
	Registry.FromGetter(paths.GetCommand)
	Registry.FromGetter(tools.GetCommand)
	Registry.FromGetter(prefs.GetCommand)
	Registry.FromGetter(doctor.GetCommand)
	Registry.FromGetter(history.GetCommand)
	Registry.FromGetter(drivers.GetCommand)
}
