// Package stego hides RSA-encrypted payloads in pixel buffers and gets them
// back out.
//
// Hide runs Idle → KeyGenerated → Encrypted → Framed → Embedded → Done; the
// capacity check guards Framed → Embedded and the buffer is untouched when it
// fails. Extract runs Idle → HeaderRead → PayloadRead → Decrypted → Done.
// Each transition is logged at debug level under the "stage" key.
//
// The service keeps no state between calls.
package stego
