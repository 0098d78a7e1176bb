package transcript

import (
	"math"
	"testing"
)

func TestFormatSRTZero(t *testing.T) {
	if got := FormatSRT(0.0); got != "00:00:00,000" {
		t.Fatalf("FormatSRT(0) = %q, want 00:00:00,000", got)
	}
}

func TestFormatSRTStandardLayout(t *testing.T) {
	// virgule, trois chiffres de millisecondes, heures toujours sur deux chiffres
	if got := FormatSRT(1.5); got != "00:00:01,500" {
		t.Fatalf("FormatSRT(1.5) = %q", got)
	}
	if got := FormatSRT(3661.25); got != "01:01:01,250" {
		t.Fatalf("FormatSRT(3661.25) = %q", got)
	}
}

func TestFormatDisplayWithoutHours(t *testing.T) {
	if got := FormatDisplay(65.5); got != "1:05.50" {
		t.Fatalf("FormatDisplay(65.5) = %q, want 1:05.50", got)
	}
	if got := FormatDisplay(0); got != "0:00.00" {
		t.Fatalf("FormatDisplay(0) = %q", got)
	}
}

func TestFormatDisplayWithHours(t *testing.T) {
	// les heures n'apparaissent que si non nulles, minutes/secondes sur deux chiffres
	if got := FormatDisplay(3725.25); got != "1:02:05.25" {
		t.Fatalf("FormatDisplay(3725.25) = %q", got)
	}
}

func TestFormattersClampBadInput(t *testing.T) {
	// négatif et NaN sont bornés à zéro (question ouverte tranchée côté implémentation)
	if got := FormatDisplay(-3.2); got != "0:00.00" {
		t.Fatalf("FormatDisplay(-3.2) = %q", got)
	}
	if got := FormatSRT(math.NaN()); got != "00:00:00,000" {
		t.Fatalf("FormatSRT(NaN) = %q", got)
	}
}

func TestFormattersArePure(t *testing.T) {
	// même entrée, même sortie, peu importe le nombre d'appels
	for i := 0; i < 3; i++ {
		if FormatSRT(12.345) != "00:00:12,345" {
			t.Fatal("FormatSRT not deterministic")
		}
		if FormatDisplay(12.25) != "0:12.25" {
			t.Fatal("FormatDisplay not deterministic")
		}
	}
}
