package filestorage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const saveErrorPrefix = "Failed to save file: "

type Provider interface {
	// Save перезаписывает файл текстом как есть, возвращает путь к файлу
	Save(ctx context.Context, text string) (path string, err error)
}

var Instance Provider

type impl struct {
	path     string
	s3client *minio.Client
	bucket   string
}

// NewHandler s3client == nil отключает копирование в S3
func NewHandler(path string, s3client *minio.Client, bucket string) {
	Instance = NewInstance(path, s3client, bucket)
}

func NewInstance(path string, s3client *minio.Client, bucket string) Provider {
	return &impl{
		path:     path,
		s3client: s3client,
		bucket:   bucket,
	}
}

func (i impl) Save(ctx context.Context, text string) (string, error) {
	if err := SaveText(i.path, text); err != nil {
		return "", err
	}
	if i.s3client != nil {
		if err := i.upload(ctx, text); err != nil {
			log.
				WithField("bucket", i.bucket).
				WithField("object", i.objectName()).
				WithError(err).
				Error("ошибка копирования описания вакансии в S3")
		}
	}
	return i.path, nil
}

func (i impl) upload(ctx context.Context, text string) error {
	exists, err := i.s3client.BucketExists(ctx, i.bucket)
	if err != nil {
		return err
	}
	if !exists {
		err = i.s3client.MakeBucket(ctx, i.bucket, minio.MakeBucketOptions{Region: "us-east-1"})
		if err != nil {
			return err
		}
	}
	_, err = i.s3client.PutObject(ctx, i.bucket, i.objectName(), bytes.NewReader([]byte(text)), int64(len(text)),
		minio.PutObjectOptions{ContentType: "text/markdown; charset=utf-8"})
	return err
}

func (i impl) objectName() string {
	return filepath.ToSlash(filepath.Base(i.path))
}

// SaveText запись с перезаписью, без дописывания и версий
func SaveText(path, text string) error {
	err := os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		return errors.Wrap(err, "ошибка записи файла")
	}
	return nil
}

// SaveErrorMessage текст ошибки сохранения для пользователя
func SaveErrorMessage(err error) string {
	return saveErrorPrefix + errors.Cause(err).Error()
}
