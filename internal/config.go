package internal

import (
	"flag"
	"os"
)

var c *config

const RunAddress = "RUN_ADDRESS"

const defaultRunAddress = "localhost:8080"

type config struct {
	RunAddress string
}

func NewConfig() *config {
	c = new(config)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
