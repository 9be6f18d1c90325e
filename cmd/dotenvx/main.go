// Command dotenvx manages .env files whose secret values are encrypted
// against a secp256k1 public key.
package main

import "os"

// exitFunc is the function called to terminate the process. Replaced in
// tests so a failing command doesn't kill the test binary.
var exitFunc = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitFunc(exitCode(err))
	}
}
