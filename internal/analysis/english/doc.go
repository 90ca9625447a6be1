// Package english holds the English reference statistics used by the
// analysis stages and the English-likeness test applied to candidate
// decryptions.
package english
