package controllers

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"Predictor/utils/fileformat"

	aws2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const maxImageBytes = 512_000

// uploadImage validates an uploaded image and puts it in S3 under the given
// prefix, returning the public virtual-host URL.
func uploadImage(file *multipart.FileHeader, prefix string) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open file")
	}
	defer f.Close()

	size := file.Size
	if size > maxImageBytes {
		return "", fmt.Errorf("file too large (<500KB)")
	}

	buf := make([]byte, size)
	if _, err := f.Read(buf); err != nil {
		return "", fmt.Errorf("could not read file")
	}
	fileType := http.DetectContentType(buf)
	if !strings.HasPrefix(fileType, "image/") {
		return "", fmt.Errorf("not an image")
	}

	key := prefix + "/" + fileformat.UniqueFormat(file.Filename)

	// Strip any accidental path suffix from the bucket name.
	rawBucket := os.Getenv("S3_BUCKET")
	bucketName := strings.SplitN(rawBucket, "/", 2)[0]
	if bucketName == "" {
		log.Printf("S3_BUCKET env var is empty or invalid: '%s'", rawBucket)
		return "", fmt.Errorf("server configuration error")
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-2"
	}
	cfg, err := config.LoadDefaultConfig(
		context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		log.Printf("AWS config load error: %v", err)
		return "", fmt.Errorf("AWS configuration error")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:        aws2.String(bucketName),
		Key:           aws2.String(key),
		Body:          bytes.NewReader(buf),
		ContentLength: aws2.Int64(size),
		ContentType:   aws2.String(fileType),
	})
	if err != nil {
		log.Printf("S3 upload failed: %v", err)
		return "", fmt.Errorf("failed to upload image")
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucketName, region, key), nil
}
