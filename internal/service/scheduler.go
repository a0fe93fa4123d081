package service

import "time"

// TimerScheduler schedules callbacks with time.AfterFunc.
type TimerScheduler struct{}

// NewTimerScheduler creates a new TimerScheduler.
func NewTimerScheduler() TimerScheduler {
	return TimerScheduler{}
}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
