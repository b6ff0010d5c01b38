// Package steg hides text in the least significant bits of an image's
// red, green and blue channels and reads it back.
//
// A payload is the message followed by Marker, each character written as
// 8 bits, most significant first, one bit per channel sample in row-major
// pixel order. Reveal stops at the first Marker, so a message containing
// Marker is cut short there; the protocol has no escaping.
package steg
