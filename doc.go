// Package dotenvx manages .env files whose secret values are encrypted
// against a secp256k1 public key, so the file itself is safe to commit while
// the matching private key lives in a sibling .env.keys file.
//
// Basic usage:
//
//	kp, err := dotenvx.GenerateKeypair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := dotenvx.EncryptFile(".env", dotenvx.WithPublicKeyOverride(kp.PublicKeyHex())); err != nil {
//	    log.Fatal(err)
//	}
//
//	env, err := dotenvx.Load([]string{".env"}, dotenvx.WithLoadPrivateKeyOverride(kp.PrivateKeyHex()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(env["DATABASE_URL"])
package dotenvx
