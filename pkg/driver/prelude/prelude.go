package prelude

import (
	_ "arduinoenv/pkg/driver/notify/desktop"
	_ "arduinoenv/pkg/driver/notify/ipc"
	_ "arduinoenv/pkg/driver/notify/log"
)
