// Package translate formats user-visible messages for the user's locale.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = systemPrinter()

// systemPrinter matches the locales reported by the operating system.
func systemPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("x64emu: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// Language selects the message language by BCP 47 tag, e.g. "de-CH".
// An empty tag restores the system locale.
func Language(tag string) (err error) {
	if len(tag) == 0 {
		printer = systemPrinter()
		return
	}

	lang, err := language.Parse(tag)
	if err != nil {
		return
	}

	printer = message.NewPrinter(lang)
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf writes a translated en-US Fprintf() format to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
