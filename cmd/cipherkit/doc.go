// Package main provides the entry point for cipherkit.
//
// cipherkit encrypts and decrypts messages with classical ciphers:
//
//   - Caesar, ROT13, Vigenère, Atbash, affine
//   - Polybius square and planetary magic squares
//   - Repeating-key XOR with hex, base64 or raw ciphertext
//   - Chains of the above
//
// Usage:
//
//	cipherkit encrypt -t vigenere --keyword LEMON "Attack at dawn"
//	echo KHOOR | cipherkit decrypt -t caesar --shift 3
//	cipherkit chain encrypt -s rot13 -s xor:secret "Hello"
//	cipherkit -o json list
package main
