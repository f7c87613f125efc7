package main

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

var opts = struct {
	Secret  string        `long:"secret" env:"JWT_SECRET" required:"true" description:"HS256 secret"`
	Address string        `long:"address" required:"true" description:"principal address"`
	TTL     time.Duration `long:"ttl" default:"24h" description:"token lifetime"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "token"
	parser.LongDescription = "Issues a bearer token for the given principal"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   opts.Address,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(opts.TTL)),
	})

	s, err := token.SignedString([]byte(opts.Secret))
	if err != nil {
		logrus.WithError(err).Fatal("failed to sign token")
	}

	fmt.Println(s)
}
