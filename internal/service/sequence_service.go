package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainRepo "rhu-patient-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Sequence kinds. Each kind keeps an independent per-year counter.
const (
	SequenceConsultation = "consultation"
	SequenceCertificate  = "certificate"
)

const (
	redisSequenceKeyPrefix = "portal:seq:"

	// Counters expire well after the year ends; the startup re-sync
	// re-seeds them from the database anyway.
	sequenceKeyTTL = 400 * 24 * time.Hour
)

// SequenceService issues per-year display-number sequences (CONS-<year>-NNNN,
// CERT-<year>-NNNN) from Redis counters.
//
// Two simultaneous requests can never draw the same number: Redis INCR is
// atomic. Numbers are monotonically increasing and never reused, so a request
// that fails after drawing a number leaves a gap rather than a duplicate.
// On startup the counters are re-seeded from MAX(sequence_no) in Postgres so
// a Redis flush cannot roll a sequence backwards.
type SequenceService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger

	consultationRepo domainRepo.ConsultationRepository
	certificateRepo  domainRepo.CertificateRepository

	// Guards the read-then-set during re-sync; Next itself needs no lock.
	syncMu sync.Mutex
}

func NewSequenceService(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	consultationRepo domainRepo.ConsultationRepository,
	certificateRepo domainRepo.CertificateRepository,
) *SequenceService {
	return &SequenceService{
		db:               db,
		redisClient:      redisClient,
		log:              log,
		consultationRepo: consultationRepo,
		certificateRepo:  certificateRepo,
	}
}

// SyncOnStartup re-seeds the current year's counters from the database.
// Should be called before accepting traffic.
func (s *SequenceService) SyncOnStartup(ctx context.Context) error {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	year := time.Now().UTC().Year()

	consultationMax, err := s.consultationRepo.MaxSequenceForYear(s.db.WithContext(ctx), year)
	if err != nil {
		return fmt.Errorf("query consultation max sequence: %w", err)
	}

	certificateMax, err := s.certificateRepo.MaxSequenceForYear(s.db.WithContext(ctx), year)
	if err != nil {
		return fmt.Errorf("query certificate max sequence: %w", err)
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, s.key(SequenceConsultation, year), consultationMax, sequenceKeyTTL)
	pipe.Set(ctx, s.key(SequenceCertificate, year), certificateMax, sequenceKeyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("seed sequence counters: %w", err)
	}

	s.log.Infof("Sequence counters synced for %d: consultation=%d, certificate=%d", year, consultationMax, certificateMax)
	return nil
}

// Next atomically draws the next sequence number for the kind and year.
func (s *SequenceService) Next(ctx context.Context, kind string, year int) (int64, error) {
	seq, err := s.redisClient.Incr(ctx, s.key(kind, year)).Result()
	if err != nil {
		s.log.Warnf("Failed to draw %s sequence for %d: %+v", kind, year, err)
		return 0, fmt.Errorf("draw %s sequence for %d: %w", kind, year, err)
	}
	// First draw of a new year starts the counter implicitly at 1; give the
	// key its TTL on that occasion.
	if seq == 1 {
		if err := s.redisClient.Expire(ctx, s.key(kind, year), sequenceKeyTTL).Err(); err != nil {
			s.log.Warnf("Failed to set TTL on %s sequence key (non-fatal): %+v", kind, err)
		}
	}
	return seq, nil
}

func (s *SequenceService) key(kind string, year int) string {
	return fmt.Sprintf("%s%s:%d", redisSequenceKeyPrefix, kind, year)
}
