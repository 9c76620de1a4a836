package middleware

import "time"

func SetLimiterClock(l *KeyedLimiter, now func() time.Time) {
	l.now = now
}
