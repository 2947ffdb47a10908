package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minio.Client

func NewClient(endpoint, accessKeyID, secretAccessKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
}

// Ping проверка соединения
func Ping(ctx context.Context, client *minio.Client) error {
	_, err := client.ListBuckets(ctx)
	return err
}
