package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// checksumsFilename sits next to the config file and maps file names to
// BLAKE3 hashes. Verification is opt-in: no file, no check.
const checksumsFilename = ".checksums"

// ComputeHash computes the hex-encoded BLAKE3 hash of a file.
func ComputeHash(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

// VerifyFileHash verifies a file against an expected BLAKE3 hash.
func VerifyFileHash(filePath, expectedHash string) error {
	actual, err := ComputeHash(filePath)
	if err != nil {
		return fmt.Errorf("failed to compute hash: %w", err)
	}
	if actual != expectedHash {
		return fmt.Errorf("hash mismatch for %s: expected %s, got %s",
			filepath.Base(filePath), expectedHash, actual)
	}
	return nil
}

// GenerateChecksums writes a .checksums file covering the given config file.
func GenerateChecksums(configPath string) error {
	hash, err := ComputeHash(configPath)
	if err != nil {
		return err
	}
	entries := map[string]string{filepath.Base(configPath): hash}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode checksums: %w", err)
	}
	dest := filepath.Join(filepath.Dir(configPath), checksumsFilename)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}

// verifyChecksums checks configPath against a sibling .checksums file, if
// one exists and carries an entry for it.
func verifyChecksums(configPath string) error {
	sums := filepath.Join(filepath.Dir(configPath), checksumsFilename)
	data, err := os.ReadFile(sums)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", sums, err)
	}

	entries := map[string]string{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse %s: %w", sums, err)
	}

	expected, ok := entries[filepath.Base(configPath)]
	if !ok {
		return nil
	}
	if err := VerifyFileHash(configPath, expected); err != nil {
		return fmt.Errorf("config integrity check failed: %w", err)
	}
	return nil
}
