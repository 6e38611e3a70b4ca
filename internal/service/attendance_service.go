package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strings"
	"time"

	"trackit-be/internal/entities"
)

const (
	randomSegmentLength = 9
	base36Alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var (
	ErrInvalidCourse = errors.New("course must be 1-32 letters, digits or hyphens")
	coursePattern    = regexp.MustCompile(`^[A-Z0-9-]{1,32}$`)
)

// AttendanceService issues the rotating codes shown on the teacher's display.
type AttendanceService interface {
	GenerateCode(course string) (*entities.AttendanceCode, error)
}

type attendanceService struct {
	rotateEvery time.Duration
	now         func() time.Time
	random      io.Reader
}

func NewAttendanceService(rotateEvery time.Duration) AttendanceService {
	return &attendanceService{
		rotateEvery: rotateEvery,
		now:         time.Now,
		random:      rand.Reader,
	}
}

// GenerateCode returns QR_CODE_<9 base36 chars>_<COURSE>_<YEAR>.
func (s *attendanceService) GenerateCode(course string) (*entities.AttendanceCode, error) {
	course = strings.ToUpper(strings.TrimSpace(course))
	if !coursePattern.MatchString(course) {
		return nil, ErrInvalidCourse
	}

	segment, err := s.randomSegment()
	if err != nil {
		return nil, err
	}

	issuedAt := s.now().UTC()
	return &entities.AttendanceCode{
		Payload:     fmt.Sprintf("QR_CODE_%s_%s_%d", segment, course, issuedAt.Year()),
		Course:      course,
		IssuedAt:    issuedAt,
		RotateEvery: s.rotateEvery,
	}, nil
}

func (s *attendanceService) randomSegment() (string, error) {
	radix := big.NewInt(int64(len(base36Alphabet)))
	var b strings.Builder
	b.Grow(randomSegmentLength)
	for i := 0; i < randomSegmentLength; i++ {
		n, err := rand.Int(s.random, radix)
		if err != nil {
			return "", fmt.Errorf("failed to generate random bytes: %w", err)
		}
		b.WriteByte(base36Alphabet[n.Int64()])
	}
	return b.String(), nil
}
