// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"bytes"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type S3Filesystem struct {
	svc       *s3.S3
	mapBucket string
}

func NewS3Filesystem(session *session.Session, stage string) (*S3Filesystem, error) {
	s3Filesystem := &S3Filesystem{svc: s3.New(session)}

	s3Filesystem.mapBucket = "relief-" + stage + "-maps"

	return s3Filesystem, nil
}

// UploadMap publishes a rendered map. contentType should match the encoded
// payload (image/x-portable-pixmap or image/png).
func (s3Filesystem *S3Filesystem) UploadMap(filename, contentType string, data []byte) error {
	req, _ := s3Filesystem.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(s3Filesystem.mapBucket),
		Key:         aws.String(filename),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return req.Send()
}
