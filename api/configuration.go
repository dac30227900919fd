package api

import (
	"time"
)

type Configuration struct {
	Env            string
	AppName        string
	Port           string
	ClientAppUrl   string
	DefaultTimeout time.Duration
}
