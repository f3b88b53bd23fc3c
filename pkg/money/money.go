package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount is a sum of money in kobo.
type Amount int64

const koboPerNaira = 100

// Symbol prefixes every formatted amount, as printed on receipts.
const Symbol = "N"

var printer = message.NewPrinter(language.English)

func FromNaira(naira int64) Amount {
	return Amount(naira * koboPerNaira)
}

func (a Amount) Naira() int64 {
	return int64(a) / koboPerNaira
}

// Kobo is the whole amount in minor units.
func (a Amount) Kobo() int64 {
	return int64(a)
}

// KoboPart is what is left over after the whole naira.
func (a Amount) KoboPart() int64 {
	return int64(a) % koboPerNaira
}

// String formats the amount as N30,000 or N1,250.50 when kobo are present.
func (a Amount) String() string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}
	if a.KoboPart() == 0 {
		return sign + Symbol + printer.Sprintf("%d", a.Naira())
	}
	return sign + Symbol + printer.Sprintf("%d", a.Naira()) + printer.Sprintf(".%02d", a.KoboPart())
}
