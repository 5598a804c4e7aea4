package dockside

import (
	"context"
	"fmt"
	"io"

	"github.com/distribution/reference"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/swarm"
	"github.com/sirupsen/logrus"
)

// ServiceCollection manages swarm services. The daemon must be a swarm
// manager.
type ServiceCollection struct {
	client *Client
}

// Get returns the service identified by ID or name.
func (c *ServiceCollection) Get(ctx context.Context, serviceID string, options swarm.ServiceInspectOptions) (*Service, error) {
	if serviceID == "" {
		return nil, ErrNullResource
	}

	resp, _, err := c.client.api.ServiceInspectWithRaw(ctx, serviceID, options)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect service %q: %w", serviceID, err)
	}

	return newService(c.client, resp), nil
}

// List returns services known to the swarm.
func (c *ServiceCollection) List(ctx context.Context, options swarm.ServiceListOptions) ([]*Service, error) {
	resp, err := c.client.api.ServiceList(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]*Service, 0, len(resp))
	for _, service := range resp {
		services = append(services, newService(c.client, service))
	}
	return services, nil
}

// Create creates a service from the given spec and returns its model.
//
// When the caller does not provide registry credentials in options, the
// client resolves them for the spec's image so the swarm's agents can pull
// it.
func (c *ServiceCollection) Create(ctx context.Context, spec swarm.ServiceSpec, options swarm.ServiceCreateOptions) (*Service, error) {
	if options.EncodedRegistryAuth == "" {
		options.EncodedRegistryAuth = c.registryAuthForSpec(spec)
	}

	resp, err := c.client.api.ServiceCreate(ctx, spec, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create service %q: %w", spec.Name, err)
	}

	for _, warning := range resp.Warnings {
		logrus.WithField("service", resp.ID).Warn(warning)
	}

	return c.Get(ctx, resp.ID, swarm.ServiceInspectOptions{})
}

// registryAuthForSpec resolves credentials for the image a spec runs. An
// unparseable image reference resolves to no credentials rather than an
// error, matching what the daemon does with anonymous pulls.
func (c *ServiceCollection) registryAuthForSpec(spec swarm.ServiceSpec) string {
	if spec.TaskTemplate.ContainerSpec == nil {
		return ""
	}

	named, err := reference.ParseNormalizedNamed(spec.TaskTemplate.ContainerSpec.Image)
	if err != nil {
		return ""
	}

	encodedAuth, err := c.client.registryAuthHeader(named)
	if err != nil {
		logrus.Debugf("failed to resolve registry credentials for %q: %v", spec.TaskTemplate.ContainerSpec.Image, err)
		return ""
	}
	return encodedAuth
}

// Service is a local representation of a swarm service.
//
// The exported fields are a snapshot taken when the model was built; call
// Reload to refresh them.
type Service struct {
	ID   string
	Name string

	// Attrs is the raw daemon payload backing the fields above.
	Attrs swarm.Service

	client *Client
}

func newService(client *Client, resp swarm.Service) *Service {
	return &Service{
		ID:     resp.ID,
		Name:   resp.Spec.Name,
		Attrs:  resp,
		client: client,
	}
}

// ShortID returns the truncated form of the service's ID.
func (s *Service) ShortID() string {
	if len(s.ID) > shortIDLength {
		return s.ID[:shortIDLength]
	}
	return s.ID
}

// Tasks returns the tasks scheduled for the service. Additional filters
// narrow the result; pass a zero filters.Args for all of the service's
// tasks.
func (s *Service) Tasks(ctx context.Context, taskFilters filters.Args) ([]swarm.Task, error) {
	if taskFilters.Len() == 0 {
		taskFilters = filters.NewArgs()
	}
	taskFilters.Add("service", s.ID)

	tasks, err := s.client.api.TaskList(ctx, swarm.TaskListOptions{Filters: taskFilters})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks of service %q: %w", s.ID, err)
	}
	return tasks, nil
}

// Logs returns the service's aggregated log stream. The stream is
// multiplexed in the same format container logs use.
func (s *Service) Logs(ctx context.Context, options container.LogsOptions) (io.ReadCloser, error) {
	logs, err := s.client.api.ServiceLogs(ctx, s.ID, options)
	if err != nil {
		return nil, fmt.Errorf("failed to read logs of service %q: %w", s.ID, err)
	}
	return logs, nil
}

// Update replaces the service's spec. The version in Attrs is sent with the
// update, so Reload first when the service may have changed since the model
// was built.
func (s *Service) Update(ctx context.Context, spec swarm.ServiceSpec, options swarm.ServiceUpdateOptions) error {
	if options.EncodedRegistryAuth == "" {
		options.EncodedRegistryAuth = s.client.Services().registryAuthForSpec(spec)
	}

	resp, err := s.client.api.ServiceUpdate(ctx, s.ID, s.Attrs.Version, spec, options)
	if err != nil {
		return fmt.Errorf("failed to update service %q: %w\nReload the service and retry if its version is out of date", s.ID, err)
	}

	for _, warning := range resp.Warnings {
		logrus.WithField("service", s.ID).Warn(warning)
	}
	return nil
}

// Scale changes the number of replicas. Global services cannot be scaled.
//
// The current spec is fetched first, so a stale model scales safely.
func (s *Service) Scale(ctx context.Context, replicas uint64) error {
	current, _, err := s.client.api.ServiceInspectWithRaw(ctx, s.ID, swarm.ServiceInspectOptions{})
	if err != nil {
		return fmt.Errorf("failed to inspect service %q: %w", s.ID, err)
	}

	if current.Spec.Mode.Global != nil {
		return fmt.Errorf("failed to scale service %q: global services run one task per node and cannot be scaled", s.ID)
	}

	current.Spec.Mode = swarm.ServiceMode{Replicated: &swarm.ReplicatedService{Replicas: &replicas}}

	resp, err := s.client.api.ServiceUpdate(ctx, s.ID, current.Version, current.Spec, swarm.ServiceUpdateOptions{})
	if err != nil {
		return fmt.Errorf("failed to scale service %q: %w", s.ID, err)
	}

	for _, warning := range resp.Warnings {
		logrus.WithField("service", s.ID).Warn(warning)
	}
	return nil
}

// ForceUpdate restarts the service's tasks without changing its spec, the
// equivalent of the command line's update with force.
func (s *Service) ForceUpdate(ctx context.Context) error {
	current, _, err := s.client.api.ServiceInspectWithRaw(ctx, s.ID, swarm.ServiceInspectOptions{})
	if err != nil {
		return fmt.Errorf("failed to inspect service %q: %w", s.ID, err)
	}

	current.Spec.TaskTemplate.ForceUpdate++

	resp, err := s.client.api.ServiceUpdate(ctx, s.ID, current.Version, current.Spec, swarm.ServiceUpdateOptions{})
	if err != nil {
		return fmt.Errorf("failed to force an update of service %q: %w", s.ID, err)
	}

	for _, warning := range resp.Warnings {
		logrus.WithField("service", s.ID).Warn(warning)
	}
	return nil
}

// Remove deletes the service from the swarm.
func (s *Service) Remove(ctx context.Context) error {
	err := s.client.api.ServiceRemove(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("failed to remove service %q: %w", s.ID, err)
	}
	return nil
}

// Reload fetches the service's current state from the swarm and updates the
// model in place.
func (s *Service) Reload(ctx context.Context) error {
	resp, _, err := s.client.api.ServiceInspectWithRaw(ctx, s.ID, swarm.ServiceInspectOptions{})
	if err != nil {
		return fmt.Errorf("failed to inspect service %q: %w", s.ID, err)
	}

	*s = *newService(s.client, resp)
	return nil
}
