package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"couple-wellness-backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const exportURLExpiry = 15 * time.Minute

// ObjectStore stores export archives and hands out temporary download links
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

// S3Store is an ObjectStore backed by an S3-compatible bucket
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store creates an S3 client. Static keys and a custom endpoint are optional.
func NewS3Store(ctx context.Context, region, bucket, accessKey, secretKey, endpoint string) (*S3Store, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: bucket}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(s.client)
	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expires
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate pre-signed URL: %w", err)
	}
	return request.URL, nil
}

// ExportService packages a member's records into a downloadable archive
type ExportService struct {
	store        ObjectStore
	memberRepo   MemberStore
	emotionRepo  EmotionStore
	interestRepo InterestStore
	testRepo     InfertilityStore
	counselRepo  CounselStore
	now          func() time.Time
}

// NewExportService creates a new export service. A nil store disables exports.
func NewExportService(
	store ObjectStore,
	memberRepo MemberStore,
	emotionRepo EmotionStore,
	interestRepo InterestStore,
	testRepo InfertilityStore,
	counselRepo CounselStore,
) *ExportService {
	return &ExportService{
		store:        store,
		memberRepo:   memberRepo,
		emotionRepo:  emotionRepo,
		interestRepo: interestRepo,
		testRepo:     testRepo,
		counselRepo:  counselRepo,
		now:          time.Now,
	}
}

// Archive is the exported document
type Archive struct {
	ExportedAt       time.Time                 `json:"exported_at"`
	Member           *models.Member            `json:"member"`
	Emotions         []*models.EmotionRecord   `json:"emotions"`
	Interests        []*models.Interest        `json:"interests"`
	InfertilityTests []*models.InfertilityTest `json:"infertility_tests"`
	Counsels         []*models.CounselRecord   `json:"counsels"`
}

// ExportResult points to the uploaded archive
type ExportResult struct {
	Key         string `json:"key"`
	DownloadURL string `json:"download_url"`
	ExpiresIn   int    `json:"expires_in"`
}

// Export uploads all records of the member and returns a temporary download link
func (s *ExportService) Export(ctx context.Context, memberID int64) (*ExportResult, error) {
	if s.store == nil {
		return nil, fmt.Errorf("exports: %w", models.ErrUnavailable)
	}

	archive, err := s.collect(ctx, memberID)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(archive)
	if err != nil {
		return nil, fmt.Errorf("failed to encode archive: %w", err)
	}

	key := fmt.Sprintf("exports/%d/%s.json", memberID, uuid.NewString())
	if err := s.store.Put(ctx, key, body, "application/json"); err != nil {
		return nil, err
	}

	url, err := s.store.PresignGet(ctx, key, exportURLExpiry)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Key:         key,
		DownloadURL: url,
		ExpiresIn:   int(exportURLExpiry.Seconds()),
	}, nil
}

func (s *ExportService) collect(ctx context.Context, memberID int64) (*Archive, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	archive := &Archive{ExportedAt: s.now().UTC(), Member: member}
	if archive.Emotions, err = s.emotionRepo.ListByMember(ctx, memberID); err != nil {
		return nil, err
	}
	if archive.Interests, err = s.interestRepo.ListByMember(ctx, memberID); err != nil {
		return nil, err
	}
	if archive.InfertilityTests, err = s.testRepo.ListByMember(ctx, memberID); err != nil {
		return nil, err
	}
	if archive.Counsels, err = s.counselRepo.ListByMember(ctx, memberID); err != nil {
		return nil, err
	}
	return archive, nil
}
