package dockside

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/distribution/reference"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/sirupsen/logrus"

	"github.com/ryanmoran/dockside/internal/archive"
)

// ImageCollection manages images on the daemon.
type ImageCollection struct {
	client *Client
}

// buildSuccessPattern recognizes the classic builder's closing stream line
// for daemons that do not send the image identifier as an aux message.
var buildSuccessPattern = regexp.MustCompile(`(^Successfully built |sha256:)([0-9a-f]+)$`)

// loadedImagePattern recognizes the references the daemon reports while
// loading an image archive.
var loadedImagePattern = regexp.MustCompile(`^(Loaded image ID: |Loaded image: )(.+)$`)

// BuildOptions describes an image build. Exactly one context source must be
// set: ContextDir to archive a directory, Context to supply a prepared tar
// stream, or Dockerfile alone to build from a single file.
type BuildOptions struct {
	// ContextDir is a directory to send as the build context. Entries
	// matched by its .dockerignore file are left out.
	ContextDir string

	// Context is a tar archive stream to send as the build context.
	Context io.Reader

	// Dockerfile names the Dockerfile within the context. When no context
	// is given it is the path of a Dockerfile to build on its own.
	Dockerfile string

	// Tags are references to apply to the built image.
	Tags []string

	// BuildArgs sets build-time variables. A nil value instructs the
	// daemon to use the value from its own environment.
	BuildArgs map[string]*string

	// Labels sets metadata labels on the built image.
	Labels map[string]string

	// Target selects a stage of a multi-stage Dockerfile.
	Target string

	// Platform selects the build platform, for example "linux/arm64".
	Platform string

	// NetworkMode sets the networking mode for build-time RUN
	// instructions.
	NetworkMode string

	// CacheFrom lists images the daemon may reuse build cache from.
	CacheFrom []string

	// ExtraHosts adds entries to /etc/hosts during the build, each in
	// "host:ip" form.
	ExtraHosts []string

	// NoCache disables the build cache.
	NoCache bool

	// Pull always attempts to pull newer versions of base images.
	Pull bool

	// ForceRemove removes intermediate containers even when the build
	// fails.
	ForceRemove bool

	// Progress receives the daemon's build output when set.
	Progress io.Writer
}

// Build builds an image and returns its model. The daemon's output is
// written to Progress as it arrives; when the daemon reports a failure the
// returned error is a *BuildError carrying the full output.
func (c *ImageCollection) Build(ctx context.Context, options BuildOptions) (*Image, error) {
	buildContext, dockerfile, err := resolveBuildContext(options)
	if err != nil {
		return nil, err
	}
	if closer, ok := buildContext.(io.Closer); ok {
		defer closer.Close()
	}

	resp, err := c.client.api.ImageBuild(ctx, buildContext, build.ImageBuildOptions{
		Version:     build.BuilderV1,
		Tags:        options.Tags,
		Dockerfile:  dockerfile,
		BuildArgs:   options.BuildArgs,
		Labels:      options.Labels,
		Target:      options.Target,
		Platform:    options.Platform,
		NetworkMode: options.NetworkMode,
		CacheFrom:   options.CacheFrom,
		ExtraHosts:  options.ExtraHosts,
		NoCache:     options.NoCache,
		PullParent:  options.Pull,
		Remove:      true,
		ForceRemove: options.ForceRemove,
		AuthConfigs: c.client.allAuthConfigs(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build image: %w\nCheck the Dockerfile and the build context", err)
	}
	defer resp.Body.Close()

	var imageID string
	log, err := followStream(ctx, resp.Body, options.Progress, func(msg jsonmessage.JSONMessage) {
		var result build.Result
		if err := json.Unmarshal(*msg.Aux, &result); err != nil {
			logrus.Debugf("failed to parse build aux message: %v", err)
			return
		}
		imageID = result.ID
	})
	if err != nil {
		var jsonErr *jsonmessage.JSONError
		if errors.As(err, &jsonErr) {
			return nil, &BuildError{Reason: jsonErr.Message, Log: log}
		}
		return nil, err
	}

	if imageID == "" {
		imageID = imageIDFromLog(log)
	}
	if imageID == "" {
		return nil, &BuildError{Reason: "build did not report an image identifier", Log: log}
	}

	return c.Get(ctx, imageID)
}

func resolveBuildContext(options BuildOptions) (io.Reader, string, error) {
	dockerfile := options.Dockerfile
	if dockerfile == "" {
		dockerfile = "Dockerfile"
	}

	switch {
	case options.Context != nil:
		return options.Context, dockerfile, nil

	case options.ContextDir != "":
		buildContext, err := archive.Tar(options.ContextDir, dockerfile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to archive build context %q: %w", options.ContextDir, err)
		}
		return buildContext, dockerfile, nil

	case options.Dockerfile != "":
		content, err := os.ReadFile(options.Dockerfile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read Dockerfile %q: %w", options.Dockerfile, err)
		}
		buildContext, err := archive.File("Dockerfile", content)
		if err != nil {
			return nil, "", fmt.Errorf("failed to archive Dockerfile %q: %w", options.Dockerfile, err)
		}
		return buildContext, "Dockerfile", nil

	default:
		return nil, "", errors.New("failed to prepare build context: set ContextDir, Context, or Dockerfile")
	}
}

// imageIDFromLog scans the build output for the identifier of the built
// image, keeping the last one reported.
func imageIDFromLog(log []jsonmessage.JSONMessage) string {
	var imageID string
	for _, msg := range log {
		match := buildSuccessPattern.FindStringSubmatch(strings.TrimSpace(msg.Stream))
		if match != nil {
			imageID = match[2]
		}
	}
	return imageID
}

// Get returns the image identified by reference or ID.
func (c *ImageCollection) Get(ctx context.Context, ref string) (*Image, error) {
	if ref == "" {
		return nil, ErrNullResource
	}

	resp, err := c.client.api.ImageInspect(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect image %q: %w", ref, err)
	}

	return newImage(c.client, resp), nil
}

// List returns images known to the daemon.
//
// The returned models carry the sparse attributes of the list endpoint; call
// Reload on a model to fetch its full state.
func (c *ImageCollection) List(ctx context.Context, options image.ListOptions) ([]*Image, error) {
	summaries, err := c.client.api.ImageList(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	images := make([]*Image, 0, len(summaries))
	for _, summary := range summaries {
		images = append(images, newImageFromSummary(c.client, summary))
	}
	return images, nil
}

// PullOptions describes how to pull an image.
type PullOptions struct {
	// Platform selects a variant of a multi-platform image, for example
	// "linux/arm64". Empty pulls the daemon's default platform.
	Platform string

	// Auth overrides the credentials the client would otherwise resolve
	// from its configuration for the image's registry.
	Auth *registry.AuthConfig

	// Progress receives the daemon's progress stream when set.
	Progress io.Writer
}

// Pull fetches an image from a registry and returns its model. References
// without a tag or digest pull "latest".
func (c *ImageCollection) Pull(ctx context.Context, ref string, options PullOptions) (*Image, error) {
	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to parse image reference %q: %w", ref, err)
	}
	named = reference.TagNameOnly(named)

	encodedAuth, err := c.authHeader(named, options.Auth)
	if err != nil {
		return nil, err
	}

	body, err := c.client.api.ImagePull(ctx, named.String(), image.PullOptions{
		RegistryAuth: encodedAuth,
		Platform:     options.Platform,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pull image %q: %w\nVerify the reference and your registry credentials", ref, err)
	}
	defer body.Close()

	if _, err := followStream(ctx, body, options.Progress, nil); err != nil {
		return nil, fmt.Errorf("failed to pull image %q: %w", ref, err)
	}

	return c.Get(ctx, reference.FamiliarString(named))
}

// PushOptions describes how to push an image.
type PushOptions struct {
	// All pushes every tag of the repository instead of a single
	// reference.
	All bool

	// Auth overrides the credentials the client would otherwise resolve
	// from its configuration for the image's registry.
	Auth *registry.AuthConfig

	// Progress receives the daemon's progress stream when set.
	Progress io.Writer
}

// Push uploads an image to its registry. References without a tag push
// "latest" unless All is set.
func (c *ImageCollection) Push(ctx context.Context, ref string, options PushOptions) error {
	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return fmt.Errorf("failed to parse image reference %q: %w", ref, err)
	}
	if !options.All {
		named = reference.TagNameOnly(named)
	}

	encodedAuth, err := c.authHeader(named, options.Auth)
	if err != nil {
		return err
	}

	body, err := c.client.api.ImagePush(ctx, reference.FamiliarString(named), image.PushOptions{
		All:          options.All,
		RegistryAuth: encodedAuth,
	})
	if err != nil {
		return fmt.Errorf("failed to push image %q: %w\nLog in to the registry and check that the repository exists", ref, err)
	}
	defer body.Close()

	if _, err := followStream(ctx, body, options.Progress, nil); err != nil {
		return fmt.Errorf("failed to push image %q: %w", ref, err)
	}
	return nil
}

func (c *ImageCollection) authHeader(named reference.Named, override *registry.AuthConfig) (string, error) {
	if override != nil {
		return encodeAuthConfig(*override)
	}
	return c.client.registryAuthHeader(named)
}

// LoadOptions describes how to load an image archive.
type LoadOptions struct {
	// Progress receives the daemon's progress stream when set.
	Progress io.Writer
}

// Load imports images from a tar archive, such as one produced by Save, and
// returns models for the references the daemon reports.
func (c *ImageCollection) Load(ctx context.Context, input io.Reader, options LoadOptions) ([]*Image, error) {
	resp, err := c.client.api.ImageLoad(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w\nThe input must be a tar archive produced by an image save", err)
	}
	defer resp.Body.Close()

	log, err := followStream(ctx, resp.Body, options.Progress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}

	var images []*Image
	for _, msg := range log {
		match := loadedImagePattern.FindStringSubmatch(strings.TrimSpace(msg.Stream))
		if match == nil {
			continue
		}

		img, err := c.Get(ctx, match[2])
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

// Save returns the named images as a single tar archive stream, the same
// format the command line's save produces and Load consumes.
func (c *ImageCollection) Save(ctx context.Context, refs ...string) (io.ReadCloser, error) {
	if len(refs) == 0 {
		return nil, ErrNullResource
	}

	archive, err := c.client.api.ImageSave(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("failed to save images %q: %w", strings.Join(refs, ", "), err)
	}
	return archive, nil
}

// Search queries Docker Hub for images matching the term.
func (c *ImageCollection) Search(ctx context.Context, term string, options registry.SearchOptions) ([]registry.SearchResult, error) {
	if options.RegistryAuth == "" {
		auth, err := c.client.resolveAuthConfig(indexServer)
		if err == nil {
			if encoded, err := encodeAuthConfig(auth); err == nil {
				options.RegistryAuth = encoded
			}
		}
	}

	results, err := c.client.api.ImageSearch(ctx, term, options)
	if err != nil {
		return nil, fmt.Errorf("failed to search for %q: %w", term, err)
	}
	return results, nil
}

// Remove deletes the image identified by reference or ID from the daemon.
func (c *ImageCollection) Remove(ctx context.Context, ref string, options image.RemoveOptions) ([]image.DeleteResponse, error) {
	deleted, err := c.client.api.ImageRemove(ctx, ref, options)
	if err != nil {
		return nil, fmt.Errorf("failed to remove image %q: %w", ref, err)
	}
	return deleted, nil
}

// Prune removes unused images and reports what was deleted.
func (c *ImageCollection) Prune(ctx context.Context, pruneFilter filters.Args) (image.PruneReport, error) {
	report, err := c.client.api.ImagesPrune(ctx, pruneFilter)
	if err != nil {
		return image.PruneReport{}, fmt.Errorf("failed to prune images: %w", err)
	}
	return report, nil
}

// RegistryData fetches the registry's metadata about an image without
// pulling it.
func (c *ImageCollection) RegistryData(ctx context.Context, ref string) (*RegistryData, error) {
	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to parse image reference %q: %w", ref, err)
	}

	encodedAuth, err := c.client.registryAuthHeader(named)
	if err != nil {
		return nil, err
	}

	inspect, err := c.client.api.DistributionInspect(ctx, ref, encodedAuth)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect registry data for %q: %w\nVerify the reference and your registry credentials", ref, err)
	}

	return &RegistryData{
		Name:       ref,
		Descriptor: inspect.Descriptor,
		Platforms:  inspect.Platforms,
		client:     c.client,
	}, nil
}
