package main

import (
	"fantasyolympics-backend/cmd/medals-updater/commands"
	"fantasyolympics-backend/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
