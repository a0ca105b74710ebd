package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionCertificate(t *testing.T) {
	// The happy path is strictly forward.
	path := []CertificateStatus{
		CertificateStatusPending,
		CertificateStatusApprovedForCheckup,
		CertificateStatusCompletedCheckup,
		CertificateStatusReadyForDownload,
		CertificateStatusDownloaded,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, CanTransitionCertificate(path[i], path[i+1]), "%s -> %s should be allowed", path[i], path[i+1])
	}

	// No step may ever be skipped or reversed.
	assert.False(t, CanTransitionCertificate(CertificateStatusPending, CertificateStatusReadyForDownload))
	assert.False(t, CanTransitionCertificate(CertificateStatusPending, CertificateStatusDownloaded))
	assert.False(t, CanTransitionCertificate(CertificateStatusApprovedForCheckup, CertificateStatusReadyForDownload))
	assert.False(t, CanTransitionCertificate(CertificateStatusDownloaded, CertificateStatusReadyForDownload))
	assert.False(t, CanTransitionCertificate(CertificateStatusReadyForDownload, CertificateStatusPending))

	// Terminal exits.
	assert.True(t, CanTransitionCertificate(CertificateStatusPending, CertificateStatusCancelled))
	assert.True(t, CanTransitionCertificate(CertificateStatusCompletedCheckup, CertificateStatusExpired))
	assert.True(t, CanTransitionCertificate(CertificateStatusDownloaded, CertificateStatusExpired))
	assert.False(t, CanTransitionCertificate(CertificateStatusCancelled, CertificateStatusPending))
	assert.False(t, CanTransitionCertificate(CertificateStatusExpired, CertificateStatusDownloaded))

	// Once ready, the request can no longer be cancelled, only expire.
	assert.False(t, CanTransitionCertificate(CertificateStatusReadyForDownload, CertificateStatusCancelled))
	assert.False(t, CanTransitionCertificate(CertificateStatusDownloaded, CertificateStatusCancelled))
}

func TestCertificateNumber(t *testing.T) {
	assert.Equal(t, "CERT-2025-0007", CertificateNumber(2025, 7))
	assert.Equal(t, "CERT-2025-0123", CertificateNumber(2025, 123))
	assert.Equal(t, "CERT-2026-12345", CertificateNumber(2026, 12345))
}

func TestCertificateIsDownloadable(t *testing.T) {
	assert.True(t, (&MedicalCertificate{Status: CertificateStatusReadyForDownload}).IsDownloadable())
	assert.True(t, (&MedicalCertificate{Status: CertificateStatusDownloaded}).IsDownloadable())
	assert.False(t, (&MedicalCertificate{Status: CertificateStatusPending}).IsDownloadable())
	assert.False(t, (&MedicalCertificate{Status: CertificateStatusCompletedCheckup}).IsDownloadable())
	assert.False(t, (&MedicalCertificate{Status: CertificateStatusCancelled}).IsDownloadable())
}

func TestCertificateIsExpired(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	past := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&MedicalCertificate{ValidUntil: &past}).IsExpired(now))
	assert.False(t, (&MedicalCertificate{ValidUntil: &future}).IsExpired(now))
	assert.False(t, (&MedicalCertificate{}).IsExpired(now))

	// valid_until is a midnight date; the certificate is good for all of
	// that day and expires at the next midnight.
	lastDay := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, (&MedicalCertificate{ValidUntil: &lastDay}).IsExpired(now))
	assert.False(t, (&MedicalCertificate{ValidUntil: &lastDay}).IsExpired(time.Date(2025, time.June, 15, 23, 59, 59, 0, time.UTC)))
	assert.True(t, (&MedicalCertificate{ValidUntil: &lastDay}).IsExpired(time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)))
}
