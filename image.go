package dockside

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/containerd/platforms"
	"github.com/distribution/reference"
	"github.com/docker/docker/api/types/image"
	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Image is a local representation of an image on the daemon.
//
// The exported fields are a snapshot taken when the model was built; call
// Reload to refresh them.
type Image struct {
	// ID is the image's content-addressable identifier, including its
	// digest algorithm prefix.
	ID string

	// Tags lists the references pointing at the image, without the
	// placeholder entries the daemon reports for untagged images.
	Tags []string

	// Labels holds the image's metadata labels.
	Labels map[string]string

	// Attrs is the raw daemon payload backing the fields above.
	Attrs image.InspectResponse

	client *Client
}

func newImage(client *Client, resp image.InspectResponse) *Image {
	img := &Image{
		ID:     resp.ID,
		Attrs:  resp,
		client: client,
	}
	for _, tag := range resp.RepoTags {
		if tag != "<none>:<none>" {
			img.Tags = append(img.Tags, tag)
		}
	}
	if resp.Config != nil {
		img.Labels = resp.Config.Labels
	}
	return img
}

func newImageFromSummary(client *Client, summary image.Summary) *Image {
	img := &Image{
		ID:     summary.ID,
		Labels: summary.Labels,
		client: client,
	}
	for _, tag := range summary.RepoTags {
		if tag != "<none>:<none>" {
			img.Tags = append(img.Tags, tag)
		}
	}
	return img
}

// ShortID returns the truncated form of the image's ID. The digest algorithm
// prefix is kept, so "sha256:..." identifiers truncate to nineteen
// characters.
func (i *Image) ShortID() string {
	return truncateDigest(i.ID)
}

func truncateDigest(id string) string {
	if rest, ok := strings.CutPrefix(id, "sha256:"); ok && len(rest) > shortIDLength {
		return "sha256:" + rest[:shortIDLength]
	}
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}
	return id
}

// Reload fetches the image's current state from the daemon and updates the
// model in place.
func (i *Image) Reload(ctx context.Context) error {
	resp, err := i.client.api.ImageInspect(ctx, i.ID)
	if err != nil {
		return fmt.Errorf("failed to inspect image %q: %w", i.ID, err)
	}

	*i = *newImage(i.client, resp)
	return nil
}

// Tag applies a reference to the image. The model's Tags field keeps its old
// value until Reload.
func (i *Image) Tag(ctx context.Context, ref string) error {
	err := i.client.api.ImageTag(ctx, i.ID, ref)
	if err != nil {
		return fmt.Errorf("failed to tag image %q as %q: %w", i.ID, ref, err)
	}
	return nil
}

// History lists the image's layers, most recent first.
func (i *Image) History(ctx context.Context) ([]image.HistoryResponseItem, error) {
	history, err := i.client.api.ImageHistory(ctx, i.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read history of image %q: %w", i.ID, err)
	}
	return history, nil
}

// Save returns the image as a tar archive stream, the same format the
// command line's save produces.
func (i *Image) Save(ctx context.Context) (io.ReadCloser, error) {
	archive, err := i.client.api.ImageSave(ctx, []string{i.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to save image %q: %w", i.ID, err)
	}
	return archive, nil
}

// Remove deletes the image from the daemon.
func (i *Image) Remove(ctx context.Context, options image.RemoveOptions) error {
	_, err := i.client.api.ImageRemove(ctx, i.ID, options)
	if err != nil {
		return fmt.Errorf("failed to remove image %q: %w\nRemove containers using the image first or set Force", i.ID, err)
	}
	return nil
}

// RegistryData is the registry's metadata about an image, retrieved without
// pulling it.
type RegistryData struct {
	// Name is the reference the metadata was looked up by.
	Name string

	// Descriptor identifies the image's manifest on the registry.
	Descriptor ocispec.Descriptor

	// Platforms lists the platforms the image is available for.
	Platforms []ocispec.Platform

	client *Client
}

// ID returns the digest of the image's manifest.
func (r *RegistryData) ID() string {
	return string(r.Digest())
}

// Digest returns the digest of the image's manifest in its typed form.
func (r *RegistryData) Digest() digest.Digest {
	return r.Descriptor.Digest
}

// ShortID returns the truncated form of the manifest digest, keeping the
// algorithm prefix.
func (r *RegistryData) ShortID() string {
	return truncateDigest(r.ID())
}

// HasPlatform reports whether the image is available for the given platform.
// Empty platform fields default to the daemon's values before matching.
func (r *RegistryData) HasPlatform(platform ocispec.Platform) bool {
	matcher := platforms.NewMatcher(platforms.Normalize(platform))
	for _, candidate := range r.Platforms {
		if matcher.Match(candidate) {
			return true
		}
	}
	return false
}

// Pull fetches the image this metadata describes, pinned to its manifest
// digest. Platform selects a variant of a multi-platform image and may be
// empty.
func (r *RegistryData) Pull(ctx context.Context, platform string) (*Image, error) {
	named, err := reference.ParseNormalizedNamed(r.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse image reference %q: %w", r.Name, err)
	}

	canonical, err := reference.WithDigest(reference.TrimNamed(named), r.Digest())
	if err != nil {
		return nil, fmt.Errorf("failed to pin reference %q to digest %q: %w", r.Name, r.Digest(), err)
	}

	return r.client.Images().Pull(ctx, canonical.String(), PullOptions{Platform: platform})
}

// Reload fetches the metadata again from the registry and updates the model
// in place.
func (r *RegistryData) Reload(ctx context.Context) error {
	data, err := r.client.Images().RegistryData(ctx, r.Name)
	if err != nil {
		return err
	}

	*r = *data
	return nil
}
