package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrFileTooLarge   = errors.New("file size exceeds maximum allowed size")
	ErrInvalidImage   = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
	allowedImageTypes = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
)

func ValidateImageFile(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader.Size > maxSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageTypes[ext] {
		return ErrInvalidImage
	}
	return nil
}

// UploadFile stores the file under uploadDir/subDir and returns the path
// relative to uploadDir.
func UploadFile(fileHeader *multipart.FileHeader, uploadDir, subDir string, maxSize int64) (string, error) {
	if err := ValidateImageFile(fileHeader, maxSize); err != nil {
		return "", err
	}

	uploadPath := filepath.Join(uploadDir, subDir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(fileHeader.Filename, " ", "_"))
	if len(filename) > 255 {
		filename = fmt.Sprintf("%d%s", time.Now().Unix(), ext)
	}

	if err := saveUploadedFile(fileHeader, filepath.Join(uploadPath, filename)); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(subDir, filename)), nil
}

func saveUploadedFile(fileHeader *multipart.FileHeader, dst string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

func DeleteFile(uploadDir, filePath string) error {
	fullPath := filepath.Join(uploadDir, filePath)
	if _, err := os.Stat(fullPath); err == nil {
		return os.Remove(fullPath)
	}
	return nil
}
