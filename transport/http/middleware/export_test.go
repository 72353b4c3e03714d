package middleware

import "time"

func SetClock(m AppMiddleware, now func() time.Time) {
	m.(*appMiddleware).now = now
}
