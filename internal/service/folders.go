package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"ingest_api/internal/config"
	"ingest_api/internal/models"
	"ingest_api/internal/repository"
)

type FolderService struct {
	folderRepo repository.FolderRepo
	paths      config.PathsConfig
}

func NewFolderService(folderRepo repository.FolderRepo, paths config.PathsConfig) *FolderService {
	return &FolderService{folderRepo: folderRepo, paths: paths}
}

// List resolves name through the fixed folder map and lists the directory.
// Unknown or unconfigured names are a caller error; a configured path that
// does not exist (or is a plain file) is reported as not found.
func (s *FolderService) List(ctx context.Context, name string) (models.FolderListing, error) {
	dir, ok := s.paths.Folder(name)
	if !ok {
		return models.FolderListing{}, fmt.Errorf("%w: %q", ErrUnknownFolder, name)
	}

	files, err := s.folderRepo.List(ctx, dir)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, repository.ErrNotDirectory) {
		return models.FolderListing{}, fmt.Errorf("%w: %s", ErrFolderNotFound, dir)
	}
	if err != nil {
		return models.FolderListing{}, fmt.Errorf("list folder %q: %w", name, err)
	}
	return models.FolderListing{Folder: name, Files: files}, nil
}
