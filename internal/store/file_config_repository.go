// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/amitvgi12/jarvis-configuration-service/internal/config"
	"github.com/amitvgi12/jarvis-configuration-service/internal/document"
	"github.com/amitvgi12/jarvis-configuration-service/internal/logger"
	"github.com/amitvgi12/jarvis-configuration-service/models"
)

const baseModuleName = "base"

// fileConfigRepository is the filesystem implementation of
// [ConfigRepository].
//
// The tree it reads is laid out as:
//
//	root/{app}/Default/{module}{ext}          module layer
//	root/{app}/Default/base{ext}              lowest layer of every module
//	root/{app}/Default/{module}.{host}{ext}   host override layer
//	root/{app}/Default/resources/{file}       raw resources
//	root/{app}.redirect                       one-line pointer to another app folder
//
// Names are compared without regard to case. Every call reads the tree
// again; see [cachedConfigRepository] for the caching decorator.
type fileConfigRepository struct {
	root           string
	extension      string
	parametersName string
	format         document.Format
	readFile       func(name string) ([]byte, error)
	logger         *logger.Logger
}

// application is an application folder after redirect resolution.
type application struct {
	defaultDir string
	stamps     Fingerprint
}

// NewFileConfigRepository constructs a [ConfigRepository] over cfg.BaseDirectory.
//
// Returns an error if the extension has no registered codec or the base
// directory does not exist.
func NewFileConfigRepository(cfg config.Storage, log *logger.Logger) (ConfigRepository, error) {
	format, err := document.FormatForExtension(cfg.Extension)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(cfg.BaseDirectory)
	if err != nil {
		return nil, fmt.Errorf("error resolving base directory: %w", err)
	}
	if !dirExists(root) {
		return nil, fmt.Errorf("%w: base directory %s does not exist", ErrReadingFile, root)
	}

	return &fileConfigRepository{
		root:           root,
		extension:      cfg.Extension,
		parametersName: cfg.ParametersName,
		format:         format,
		readFile:       os.ReadFile,
		logger:         log,
	}, nil
}

func (r *fileConfigRepository) BaseDirectory() string {
	return r.root
}

func (r *fileConfigRepository) ListApplications(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx, err := readDirIndex(r.root)
	if err != nil {
		r.logger.Err(err).Str("func", "fileConfigRepository.ListApplications").Msg("error listing base directory")
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	names := make([]string, 0, len(idx.entries))
	for _, e := range idx.entries {
		if isDir(idx.path, e) {
			names = append(names, e.Name())
			continue
		}
		if app, ok := trimExtension(e.Name(), redirectExtension); ok {
			names = append(names, app)
		}
	}
	return sortUnique(names), nil
}

func (r *fileConfigRepository) ListModules(ctx context.Context, appName, hostName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	app, err := r.resolveApplication(appName)
	if err != nil {
		return nil, err
	}

	idx, err := readDirIndex(app.defaultDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	names := make([]string, 0, len(idx.entries))
	for _, e := range idx.entries {
		if isDir(idx.path, e) {
			continue
		}
		stem, ok := trimExtension(e.Name(), r.extension)
		if !ok {
			continue
		}

		module, host, hasHost := strings.Cut(stem, ".")
		if hasHost && (hostName == "" || !strings.EqualFold(host, hostName)) {
			continue
		}
		if r.reserved(module) {
			continue
		}
		names = append(names, module)
	}
	return sortUnique(names), nil
}

// LoadModule merges base, module and host layers. An application with a base
// layer answers every module name, so a misspelled module is served the base
// document instead of failing with [ErrModuleNotFound].
func (r *fileConfigRepository) LoadModule(ctx context.Context, req models.ConfigRequest) (*ResolvedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.EqualFold(req.ModuleName, r.parametersName) {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, req.ModuleName)
	}

	app, err := r.resolveApplication(req.AppName)
	if err != nil {
		return nil, err
	}

	names := []string{baseModuleName + r.extension}
	if !strings.EqualFold(req.ModuleName, baseModuleName) {
		names = append(names, req.ModuleName+r.extension)
	}
	if req.HostName != "" {
		names = append(names, req.ModuleName+"."+req.HostName+r.extension)
	}

	resolved, err := r.loadLayers(app, names)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrModuleNotFound, req.AppName, req.ModuleName)
	}

	r.logger.Debug().
		Str("func", "fileConfigRepository.LoadModule").
		Str("app", req.AppName).
		Str("module", req.ModuleName).
		Str("host", req.HostName).
		Strs("sources", resolved.Sources).
		Msg("module resolved")

	return resolved, nil
}

func (r *fileConfigRepository) LoadParameters(ctx context.Context, appName, hostName string) (*ResolvedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	app, err := r.resolveApplication(appName)
	if err != nil {
		return nil, err
	}

	names := []string{r.parametersName + r.extension}
	if hostName != "" {
		names = append(names, r.parametersName+"."+hostName+r.extension)
	}

	resolved, err := r.loadLayers(app, names)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		resolved = &ResolvedDocument{
			Document:    document.Mapping(),
			Format:      r.format,
			Fingerprint: app.stamps,
		}
	}
	return resolved, nil
}

func (r *fileConfigRepository) ReadResource(ctx context.Context, appName, fileName string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	app, err := r.resolveApplication(appName)
	if err != nil {
		return nil, err
	}

	idx, err := readDirIndex(app.defaultDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	resourcesDir, ok := idx.findDir(resourcesFolderName)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrResourceNotFound, appName, fileName)
	}

	idx, err = readDirIndex(resourcesDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	path, ok := idx.findFile(fileName)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrResourceNotFound, appName, fileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Err(err).Str("func", "fileConfigRepository.ReadResource").Str("path", path).Msg("error reading resource")
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	return data, nil
}

// resolveApplication locates the Default folder of appName, following a
// redirect record when one exists. Redirect records take precedence over a
// folder of the same name and are followed exactly once.
func (r *fileConfigRepository) resolveApplication(appName string) (application, error) {
	var app application
	app.stamps.add(r.root)

	rootIdx, err := readDirIndex(r.root)
	if err != nil {
		return app, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	var appDir string
	if record, ok := rootIdx.findFile(appName + redirectExtension); ok {
		app.stamps.add(record)

		target, err := readRedirect(r.root, record)
		if err != nil {
			r.logger.Err(err).Str("func", "fileConfigRepository.resolveApplication").Str("app", appName).Msg("invalid redirect")
			return app, err
		}
		if parent := filepath.Dir(target); parent != r.root {
			app.stamps.add(parent)
		}
		if r.isRedirected(target) {
			return app, fmt.Errorf("%w: %s -> %s", ErrRedirectChain, appName, target)
		}
		if !dirExists(target) {
			return app, fmt.Errorf("%w: %s (redirected to %s)", ErrApplicationNotFound, appName, target)
		}
		appDir = target
	} else {
		dir, ok := rootIdx.findDir(appName)
		if !ok {
			return app, fmt.Errorf("%w: %s", ErrApplicationNotFound, appName)
		}
		appDir = dir
	}
	app.stamps.add(appDir)

	appIdx, err := readDirIndex(appDir)
	if err != nil {
		return app, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	defaultDir, ok := appIdx.findDir(defaultFolderName)
	if !ok {
		return app, fmt.Errorf("%w: %s has no %s folder", ErrApplicationNotFound, appName, defaultFolderName)
	}
	app.defaultDir = defaultDir
	app.stamps.add(defaultDir)

	return app, nil
}

// isRedirected reports whether target is itself named by a redirect record
// next to it.
func (r *fileConfigRepository) isRedirected(target string) bool {
	idx, err := readDirIndex(filepath.Dir(target))
	if err != nil {
		return false
	}
	_, ok := idx.findFile(filepath.Base(target) + redirectExtension)
	return ok
}

// loadLayers reads the named files of the application's Default folder and
// merges them in order. It returns nil when none of them exist.
func (r *fileConfigRepository) loadLayers(app application, names []string) (*ResolvedDocument, error) {
	idx, err := readDirIndex(app.defaultDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	resolved := &ResolvedDocument{
		Format:      r.format,
		Fingerprint: slices.Clone(app.stamps),
	}

	layers := make([]*document.Node, 0, len(names))
	for _, name := range names {
		path, ok := idx.findFile(name)
		if !ok {
			continue
		}

		// Stamped before reading so an edit racing the read leaves the
		// fingerprint stale.
		stamp := stampPath(path)
		layer, err := r.readLayer(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
		resolved.Sources = append(resolved.Sources, path)
		resolved.Fingerprint = append(resolved.Fingerprint, stamp)
	}

	if len(layers) == 0 {
		return nil, nil
	}
	resolved.Document = document.Merge(layers...)
	return resolved, nil
}

func (r *fileConfigRepository) readLayer(path string) (*document.Node, error) {
	data, err := r.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s disappeared while reading: %w", ErrReadingFile, path, err)
		}
		r.logger.Err(err).Str("func", "fileConfigRepository.readLayer").Str("path", path).Msg("error reading layer")
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	node, err := document.Decode(data, r.format)
	if err != nil {
		r.logger.Err(err).Str("func", "fileConfigRepository.readLayer").Str("path", path).Msg("error parsing layer")
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if node.Kind() != document.KindMapping {
		return nil, fmt.Errorf("%w: %s holds a %s", ErrInvalidLayer, path, node.Kind())
	}
	return node, nil
}

// reserved reports names that are never offered as modules.
func (r *fileConfigRepository) reserved(module string) bool {
	return strings.EqualFold(module, baseModuleName) || strings.EqualFold(module, r.parametersName)
}

// sortUnique sorts names case-insensitively and drops names equal to an
// earlier one without regard to case.
func sortUnique(names []string) []string {
	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	return slices.CompactFunc(names, strings.EqualFold)
}
