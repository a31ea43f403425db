package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	imageutil "reabita_backend/pkg/utils/image"
)

var (
	s3Client   *s3.Client
	bucketName string
	region     string
)

// InitStorage configura o cliente S3. Só é chamado quando o bucket está
// definido no ambiente; sem ele o upload de media responde 503.
func InitStorage(bucket, awsRegion string) error {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	bucketName = bucket
	region = awsRegion
	return nil
}

func Ready() bool {
	return s3Client != nil
}

// UploadImage otimiza e envia a imagem para o bucket, devolvendo o URL
// público. folder agrupa por recurso ("projects", "insights", ...).
func UploadImage(file *multipart.FileHeader, folder string) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("storage not initialized")
	}

	if file.Size > imageutil.MaxImageSize {
		return "", fmt.Errorf("file size too large. Maximum size is %d bytes", imageutil.MaxImageSize)
	}

	contentType := file.Header.Get("Content-Type")
	if !imageutil.AllowedImageTypes[contentType] {
		return "", fmt.Errorf("invalid file type. Allowed types are: jpeg, png, webp")
	}

	buf, encodedType, err := imageutil.ProcessImage(file)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	fileName := fmt.Sprintf("%s/%s-%s%s",
		folder,
		slug.Make(base),
		uuid.NewString()[:8],
		filepath.Ext(file.Filename),
	)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(encodedType),
	})

	if err != nil {
		return "", fmt.Errorf("could not upload to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucketName, region, fileName), nil
}

// DeleteImage remove a imagem do bucket a partir do URL público.
func DeleteImage(imageURL string) error {
	if s3Client == nil {
		return fmt.Errorf("storage not initialized")
	}

	parts := strings.Split(imageURL, "/")
	if len(parts) < 4 {
		return fmt.Errorf("invalid image URL")
	}
	key := strings.Join(parts[3:], "/")

	_, err := s3Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})

	return err
}
