// SecretStroll CLI — anonymous credentials from the command line
//
// Usage:
//
//	secretstroll gen-ca -a gym,spa,restaurant,bars -p key.pub -s key.sec
//	secretstroll get-pk --server http://localhost:8000 -o key.pub
//	secretstroll register -p key.pub -u bob -a gym,bars -o anon.cred
//	secretstroll loc 46.52345 6.57890 -p key.pub -c anon.cred -r gym
//	secretstroll verify -p key.pub -m "46.52345,6.57890" -r gym -s showing.sig
package main

import (
	"fmt"
	"os"

	"github.com/somecookie/SecretStroll/cmd/secretstroll/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
