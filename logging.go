package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/opendream/vanityssh/search"
)

const reportInterval = 5 * time.Second

// publicBodyLen is the length of the base64 body of an ed25519 public key
// line: 51 blob bytes, standard encoding.
const publicBodyLen = 68

func reportProgress(ctx context.Context, cfg Config, stats *search.Stats) {
	ticker := time.NewTicker(reportInterval)
	defer ticker.Stop()

	expected := estimateTries(cfg.Pattern, cfg.CaseSensitive)
	if !math.IsInf(expected, 0) {
		fmt.Printf("Expected tries: %.0f\n", expected)
	}

	var last uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := stats.Snapshot()
			delta := snap.Attempts - last
			last = snap.Attempts

			line := fmt.Sprintf("Keys/s: %d Total tries: %d Matches: %d Elapsed: %s",
				delta/uint64(reportInterval/time.Second), snap.Attempts, snap.Matches,
				formatSeconds(snap.Elapsed.Seconds()))
			if !math.IsInf(expected, 0) && snap.PerSecond > 0 {
				line += fmt.Sprintf(" ETA: %s", formatSeconds(expected/snap.PerSecond))
			}
			fmt.Println(line)
		}
	}
}

// estimateTries only makes sense for plain literal patterns; anything with
// regex metacharacters gets no estimate.
func estimateTries(pattern string, caseSensitive bool) float64 {
	if regexp.QuoteMeta(pattern) != pattern {
		return math.Inf(1)
	}

	n := len(pattern)
	if n == 0 || n > publicBodyLen {
		return math.Inf(1)
	}

	charset := 64.0 // base64
	if !caseSensitive {
		// roughly half the charset
		charset = 32.0
	}

	// probability a single position matches, times candidate positions
	p := math.Pow(1.0/charset, float64(n))
	positions := float64(publicBodyLen - n + 1)
	return 1.0 / (p * positions)
}

func formatSeconds(sec float64) string {
	if math.IsInf(sec, 0) {
		return "∞"
	}

	days := int(sec) / 86400
	sec -= float64(days * 86400)
	hours := int(sec) / 3600
	sec -= float64(hours * 3600)
	mins := int(sec) / 60
	sec -= float64(mins * 60)
	return fmt.Sprintf("%dd %02dh %02dm %02ds", days, hours, mins, int(sec))
}

func printMatch(m search.Match, snap search.Snapshot) {
	fmt.Printf("\n[%s] Match found by worker %d after %d attempts\n",
		m.FoundAt.Format("2006-01-02 15:04:05"), m.Worker, m.Attempts)
	fmt.Printf("Public Key:\n%s\n", m.PublicKey)
	fmt.Printf("Private Key:\n%s", m.PrivateKey)
	if m.Mnemonic != "" {
		fmt.Printf("Seed Mnemonic:\n%s\n", m.Mnemonic)
	}
	if m.PKCS8 != "" {
		fmt.Printf("PKCS#8 Private Key:\n%s", m.PKCS8)
	}
	fmt.Printf("Speed: %.2f keys/s over %s\n", snap.PerSecond, formatSeconds(snap.Elapsed.Seconds()))
}

// appendMatch writes a found key to the output file, private key material
// included, so the file is created owner-only.
func appendMatch(path string, m search.Match) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString("-------------------\n")
	fmt.Fprintf(&b, "Public Key:\n%s\n", m.PublicKey)
	fmt.Fprintf(&b, "Private Key:\n%s", m.PrivateKey)
	if m.Mnemonic != "" {
		fmt.Fprintf(&b, "Seed Mnemonic:\n%s\n", m.Mnemonic)
	}
	if m.PKCS8 != "" {
		fmt.Fprintf(&b, "PKCS#8 Private Key:\n%s", m.PKCS8)
	}
	b.WriteString("-------------------\n")

	_, err = f.WriteString(b.String())
	return err
}
