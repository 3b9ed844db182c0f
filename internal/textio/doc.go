// Package textio acquires pipeline input text from streams.
package textio
