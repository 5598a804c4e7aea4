package dockside_test

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/events"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/api/types/swarm"
	"github.com/docker/docker/api/types/system"
	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// mockAPIClient is a mock implementation of dockside.APIClient for testing.
// Each method delegates to its corresponding func field when set and reports
// "not implemented" otherwise, so tests only wire up what they exercise.
type mockAPIClient struct {
	containerAttachFunc       func(ctx context.Context, container string, options container.AttachOptions) (types.HijackedResponse, error)
	containerCommitFunc       func(ctx context.Context, container string, options container.CommitOptions) (container.CommitResponse, error)
	containerCreateFunc       func(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	containerDiffFunc         func(ctx context.Context, container string) ([]container.FilesystemChange, error)
	containerExecAttachFunc   func(ctx context.Context, execID string, options container.ExecAttachOptions) (types.HijackedResponse, error)
	containerExecCreateFunc   func(ctx context.Context, container string, options container.ExecOptions) (container.ExecCreateResponse, error)
	containerExecInspectFunc  func(ctx context.Context, execID string) (container.ExecInspect, error)
	containerExecStartFunc    func(ctx context.Context, execID string, options container.ExecStartOptions) error
	containerExportFunc       func(ctx context.Context, container string) (io.ReadCloser, error)
	containerInspectFunc      func(ctx context.Context, container string) (container.InspectResponse, error)
	containerKillFunc         func(ctx context.Context, container, signal string) error
	containerListFunc         func(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	containerLogsFunc         func(ctx context.Context, container string, options container.LogsOptions) (io.ReadCloser, error)
	containerPauseFunc        func(ctx context.Context, container string) error
	containerRemoveFunc       func(ctx context.Context, container string, options container.RemoveOptions) error
	containerRenameFunc       func(ctx context.Context, container, newContainerName string) error
	containerResizeFunc       func(ctx context.Context, container string, options container.ResizeOptions) error
	containerRestartFunc      func(ctx context.Context, container string, options container.StopOptions) error
	containerStatsFunc        func(ctx context.Context, container string, stream bool) (container.StatsResponseReader, error)
	containerStatsOneShotFunc func(ctx context.Context, container string) (container.StatsResponseReader, error)
	containerStartFunc        func(ctx context.Context, container string, options container.StartOptions) error
	containerStopFunc         func(ctx context.Context, container string, options container.StopOptions) error
	containerTopFunc          func(ctx context.Context, container string, arguments []string) (container.TopResponse, error)
	containerUnpauseFunc      func(ctx context.Context, container string) error
	containerUpdateFunc       func(ctx context.Context, container string, updateConfig container.UpdateConfig) (container.UpdateResponse, error)
	containerWaitFunc         func(ctx context.Context, container string, condition container.WaitCondition) (<-chan container.WaitResponse, <-chan error)
	copyFromContainerFunc     func(ctx context.Context, container, srcPath string) (io.ReadCloser, container.PathStat, error)
	copyToContainerFunc       func(ctx context.Context, container, path string, content io.Reader, options container.CopyToContainerOptions) error
	containersPruneFunc       func(ctx context.Context, pruneFilters filters.Args) (container.PruneReport, error)

	imageBuildFunc   func(ctx context.Context, context io.Reader, options build.ImageBuildOptions) (build.ImageBuildResponse, error)
	imageHistoryFunc func(ctx context.Context, image string) ([]image.HistoryResponseItem, error)
	imageInspectFunc func(ctx context.Context, image string) (image.InspectResponse, error)
	imageListFunc    func(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	imageLoadFunc    func(ctx context.Context, input io.Reader) (image.LoadResponse, error)
	imagePullFunc    func(ctx context.Context, ref string, options image.PullOptions) (io.ReadCloser, error)
	imagePushFunc    func(ctx context.Context, ref string, options image.PushOptions) (io.ReadCloser, error)
	imageRemoveFunc  func(ctx context.Context, image string, options image.RemoveOptions) ([]image.DeleteResponse, error)
	imageSaveFunc    func(ctx context.Context, images []string) (io.ReadCloser, error)
	imageSearchFunc  func(ctx context.Context, term string, options registry.SearchOptions) ([]registry.SearchResult, error)
	imageTagFunc     func(ctx context.Context, image, ref string) error
	imagesPruneFunc  func(ctx context.Context, pruneFilter filters.Args) (image.PruneReport, error)

	networkConnectFunc    func(ctx context.Context, network, container string, config *network.EndpointSettings) error
	networkCreateFunc     func(ctx context.Context, name string, options network.CreateOptions) (network.CreateResponse, error)
	networkDisconnectFunc func(ctx context.Context, network, container string, force bool) error
	networkInspectFunc    func(ctx context.Context, network string, options network.InspectOptions) (network.Inspect, error)
	networkListFunc       func(ctx context.Context, options network.ListOptions) ([]network.Summary, error)
	networkRemoveFunc     func(ctx context.Context, network string) error
	networksPruneFunc     func(ctx context.Context, pruneFilter filters.Args) (network.PruneReport, error)

	volumeCreateFunc  func(ctx context.Context, options volume.CreateOptions) (volume.Volume, error)
	volumeInspectFunc func(ctx context.Context, volumeID string) (volume.Volume, error)
	volumeListFunc    func(ctx context.Context, options volume.ListOptions) (volume.ListResponse, error)
	volumeRemoveFunc  func(ctx context.Context, volumeID string, force bool) error
	volumesPruneFunc  func(ctx context.Context, pruneFilter filters.Args) (volume.PruneReport, error)

	swarmInitFunc         func(ctx context.Context, req swarm.InitRequest) (string, error)
	swarmJoinFunc         func(ctx context.Context, req swarm.JoinRequest) error
	swarmGetUnlockKeyFunc func(ctx context.Context) (swarm.UnlockKeyResponse, error)
	swarmUnlockFunc       func(ctx context.Context, req swarm.UnlockRequest) error
	swarmLeaveFunc        func(ctx context.Context, force bool) error
	swarmInspectFunc      func(ctx context.Context) (swarm.Swarm, error)
	swarmUpdateFunc       func(ctx context.Context, version swarm.Version, spec swarm.Spec, flags swarm.UpdateFlags) error

	nodeInspectWithRawFunc func(ctx context.Context, nodeID string) (swarm.Node, []byte, error)
	nodeListFunc           func(ctx context.Context, options swarm.NodeListOptions) ([]swarm.Node, error)
	nodeRemoveFunc         func(ctx context.Context, nodeID string, options swarm.NodeRemoveOptions) error
	nodeUpdateFunc         func(ctx context.Context, nodeID string, version swarm.Version, node swarm.NodeSpec) error

	serviceCreateFunc         func(ctx context.Context, service swarm.ServiceSpec, options swarm.ServiceCreateOptions) (swarm.ServiceCreateResponse, error)
	serviceInspectWithRawFunc func(ctx context.Context, serviceID string, options swarm.ServiceInspectOptions) (swarm.Service, []byte, error)
	serviceListFunc           func(ctx context.Context, options swarm.ServiceListOptions) ([]swarm.Service, error)
	serviceRemoveFunc         func(ctx context.Context, serviceID string) error
	serviceUpdateFunc         func(ctx context.Context, serviceID string, version swarm.Version, service swarm.ServiceSpec, options swarm.ServiceUpdateOptions) (swarm.ServiceUpdateResponse, error)
	serviceLogsFunc           func(ctx context.Context, serviceID string, options container.LogsOptions) (io.ReadCloser, error)
	taskListFunc              func(ctx context.Context, options swarm.TaskListOptions) ([]swarm.Task, error)

	secretListFunc           func(ctx context.Context, options swarm.SecretListOptions) ([]swarm.Secret, error)
	secretCreateFunc         func(ctx context.Context, secret swarm.SecretSpec) (swarm.SecretCreateResponse, error)
	secretRemoveFunc         func(ctx context.Context, id string) error
	secretInspectWithRawFunc func(ctx context.Context, name string) (swarm.Secret, []byte, error)

	configListFunc           func(ctx context.Context, options swarm.ConfigListOptions) ([]swarm.Config, error)
	configCreateFunc         func(ctx context.Context, config swarm.ConfigSpec) (swarm.ConfigCreateResponse, error)
	configRemoveFunc         func(ctx context.Context, id string) error
	configInspectWithRawFunc func(ctx context.Context, name string) (swarm.Config, []byte, error)

	pluginListFunc           func(ctx context.Context, filter filters.Args) (types.PluginsListResponse, error)
	pluginRemoveFunc         func(ctx context.Context, name string, options types.PluginRemoveOptions) error
	pluginEnableFunc         func(ctx context.Context, name string, options types.PluginEnableOptions) error
	pluginDisableFunc        func(ctx context.Context, name string, options types.PluginDisableOptions) error
	pluginInstallFunc        func(ctx context.Context, name string, options types.PluginInstallOptions) (io.ReadCloser, error)
	pluginUpgradeFunc        func(ctx context.Context, name string, options types.PluginInstallOptions) (io.ReadCloser, error)
	pluginPushFunc           func(ctx context.Context, name string, registryAuth string) (io.ReadCloser, error)
	pluginSetFunc            func(ctx context.Context, name string, args []string) error
	pluginInspectWithRawFunc func(ctx context.Context, name string) (*types.Plugin, []byte, error)

	distributionInspectFunc func(ctx context.Context, image, encodedRegistryAuth string) (registry.DistributionInspect, error)

	eventsFunc        func(ctx context.Context, options events.ListOptions) (<-chan events.Message, <-chan error)
	infoFunc          func(ctx context.Context) (system.Info, error)
	registryLoginFunc func(ctx context.Context, auth registry.AuthConfig) (registry.AuthenticateOKBody, error)
	diskUsageFunc     func(ctx context.Context, options types.DiskUsageOptions) (types.DiskUsage, error)
	pingFunc          func(ctx context.Context) (types.Ping, error)

	clientVersionFunc       func() string
	daemonHostFunc          func() string
	httpClientFunc          func() *http.Client
	serverVersionFunc       func(ctx context.Context) (types.Version, error)
	negotiateAPIVersionFunc func(ctx context.Context)
	closeFunc               func() error
}

func (m *mockAPIClient) ContainerAttach(ctx context.Context, containerID string, options container.AttachOptions) (types.HijackedResponse, error) {
	if m.containerAttachFunc != nil {
		return m.containerAttachFunc(ctx, containerID, options)
	}
	return types.HijackedResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerCommit(ctx context.Context, containerID string, options container.CommitOptions) (container.CommitResponse, error) {
	if m.containerCommitFunc != nil {
		return m.containerCommitFunc(ctx, containerID, options)
	}
	return container.CommitResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error) {
	if m.containerCreateFunc != nil {
		return m.containerCreateFunc(ctx, config, hostConfig, networkingConfig, platform, containerName)
	}
	return container.CreateResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerDiff(ctx context.Context, containerID string) ([]container.FilesystemChange, error) {
	if m.containerDiffFunc != nil {
		return m.containerDiffFunc(ctx, containerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerExecAttach(ctx context.Context, execID string, options container.ExecAttachOptions) (types.HijackedResponse, error) {
	if m.containerExecAttachFunc != nil {
		return m.containerExecAttachFunc(ctx, execID, options)
	}
	return types.HijackedResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerExecCreate(ctx context.Context, containerID string, options container.ExecOptions) (container.ExecCreateResponse, error) {
	if m.containerExecCreateFunc != nil {
		return m.containerExecCreateFunc(ctx, containerID, options)
	}
	return container.ExecCreateResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerExecInspect(ctx context.Context, execID string) (container.ExecInspect, error) {
	if m.containerExecInspectFunc != nil {
		return m.containerExecInspectFunc(ctx, execID)
	}
	return container.ExecInspect{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerExecStart(ctx context.Context, execID string, options container.ExecStartOptions) error {
	if m.containerExecStartFunc != nil {
		return m.containerExecStartFunc(ctx, execID, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainerExport(ctx context.Context, containerID string) (io.ReadCloser, error) {
	if m.containerExportFunc != nil {
		return m.containerExportFunc(ctx, containerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error) {
	if m.containerInspectFunc != nil {
		return m.containerInspectFunc(ctx, containerID)
	}
	return container.InspectResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerKill(ctx context.Context, containerID, signal string) error {
	if m.containerKillFunc != nil {
		return m.containerKillFunc(ctx, containerID, signal)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
	if m.containerListFunc != nil {
		return m.containerListFunc(ctx, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error) {
	if m.containerLogsFunc != nil {
		return m.containerLogsFunc(ctx, containerID, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerPause(ctx context.Context, containerID string) error {
	if m.containerPauseFunc != nil {
		return m.containerPauseFunc(ctx, containerID)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error {
	if m.containerRemoveFunc != nil {
		return m.containerRemoveFunc(ctx, containerID, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainerRename(ctx context.Context, containerID, newContainerName string) error {
	if m.containerRenameFunc != nil {
		return m.containerRenameFunc(ctx, containerID, newContainerName)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainerResize(ctx context.Context, containerID string, options container.ResizeOptions) error {
	if m.containerResizeFunc != nil {
		return m.containerResizeFunc(ctx, containerID, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainerRestart(ctx context.Context, containerID string, options container.StopOptions) error {
	if m.containerRestartFunc != nil {
		return m.containerRestartFunc(ctx, containerID, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainerStats(ctx context.Context, containerID string, stream bool) (container.StatsResponseReader, error) {
	if m.containerStatsFunc != nil {
		return m.containerStatsFunc(ctx, containerID, stream)
	}
	return container.StatsResponseReader{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerStatsOneShot(ctx context.Context, containerID string) (container.StatsResponseReader, error) {
	if m.containerStatsOneShotFunc != nil {
		return m.containerStatsOneShotFunc(ctx, containerID)
	}
	return container.StatsResponseReader{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error {
	if m.containerStartFunc != nil {
		return m.containerStartFunc(ctx, containerID, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error {
	if m.containerStopFunc != nil {
		return m.containerStopFunc(ctx, containerID, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainerTop(ctx context.Context, containerID string, arguments []string) (container.TopResponse, error) {
	if m.containerTopFunc != nil {
		return m.containerTopFunc(ctx, containerID, arguments)
	}
	return container.TopResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerUnpause(ctx context.Context, containerID string) error {
	if m.containerUnpauseFunc != nil {
		return m.containerUnpauseFunc(ctx, containerID)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainerUpdate(ctx context.Context, containerID string, updateConfig container.UpdateConfig) (container.UpdateResponse, error) {
	if m.containerUpdateFunc != nil {
		return m.containerUpdateFunc(ctx, containerID, updateConfig)
	}
	return container.UpdateResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ContainerWait(ctx context.Context, containerID string, condition container.WaitCondition) (<-chan container.WaitResponse, <-chan error) {
	if m.containerWaitFunc != nil {
		return m.containerWaitFunc(ctx, containerID, condition)
	}
	statusCh := make(chan container.WaitResponse, 1)
	errCh := make(chan error, 1)
	errCh <- errors.New("not implemented")
	return statusCh, errCh
}

func (m *mockAPIClient) CopyFromContainer(ctx context.Context, containerID, srcPath string) (io.ReadCloser, container.PathStat, error) {
	if m.copyFromContainerFunc != nil {
		return m.copyFromContainerFunc(ctx, containerID, srcPath)
	}
	return nil, container.PathStat{}, errors.New("not implemented")
}

func (m *mockAPIClient) CopyToContainer(ctx context.Context, containerID, path string, content io.Reader, options container.CopyToContainerOptions) error {
	if m.copyToContainerFunc != nil {
		return m.copyToContainerFunc(ctx, containerID, path, content, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ContainersPrune(ctx context.Context, pruneFilters filters.Args) (container.PruneReport, error) {
	if m.containersPruneFunc != nil {
		return m.containersPruneFunc(ctx, pruneFilters)
	}
	return container.PruneReport{}, errors.New("not implemented")
}

func (m *mockAPIClient) ImageBuild(ctx context.Context, buildContext io.Reader, options build.ImageBuildOptions) (build.ImageBuildResponse, error) {
	if m.imageBuildFunc != nil {
		return m.imageBuildFunc(ctx, buildContext, options)
	}
	return build.ImageBuildResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ImageHistory(ctx context.Context, imageID string, _ ...client.ImageHistoryOption) ([]image.HistoryResponseItem, error) {
	if m.imageHistoryFunc != nil {
		return m.imageHistoryFunc(ctx, imageID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ImageInspect(ctx context.Context, imageID string, _ ...client.ImageInspectOption) (image.InspectResponse, error) {
	if m.imageInspectFunc != nil {
		return m.imageInspectFunc(ctx, imageID)
	}
	return image.InspectResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error) {
	if m.imageListFunc != nil {
		return m.imageListFunc(ctx, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ImageLoad(ctx context.Context, input io.Reader, _ ...client.ImageLoadOption) (image.LoadResponse, error) {
	if m.imageLoadFunc != nil {
		return m.imageLoadFunc(ctx, input)
	}
	return image.LoadResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ImagePull(ctx context.Context, ref string, options image.PullOptions) (io.ReadCloser, error) {
	if m.imagePullFunc != nil {
		return m.imagePullFunc(ctx, ref, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ImagePush(ctx context.Context, ref string, options image.PushOptions) (io.ReadCloser, error) {
	if m.imagePushFunc != nil {
		return m.imagePushFunc(ctx, ref, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ImageRemove(ctx context.Context, imageID string, options image.RemoveOptions) ([]image.DeleteResponse, error) {
	if m.imageRemoveFunc != nil {
		return m.imageRemoveFunc(ctx, imageID, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ImageSave(ctx context.Context, images []string, _ ...client.ImageSaveOption) (io.ReadCloser, error) {
	if m.imageSaveFunc != nil {
		return m.imageSaveFunc(ctx, images)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ImageSearch(ctx context.Context, term string, options registry.SearchOptions) ([]registry.SearchResult, error) {
	if m.imageSearchFunc != nil {
		return m.imageSearchFunc(ctx, term, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ImageTag(ctx context.Context, imageID, ref string) error {
	if m.imageTagFunc != nil {
		return m.imageTagFunc(ctx, imageID, ref)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ImagesPrune(ctx context.Context, pruneFilter filters.Args) (image.PruneReport, error) {
	if m.imagesPruneFunc != nil {
		return m.imagesPruneFunc(ctx, pruneFilter)
	}
	return image.PruneReport{}, errors.New("not implemented")
}

func (m *mockAPIClient) NetworkConnect(ctx context.Context, networkID, containerID string, config *network.EndpointSettings) error {
	if m.networkConnectFunc != nil {
		return m.networkConnectFunc(ctx, networkID, containerID, config)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) NetworkCreate(ctx context.Context, name string, options network.CreateOptions) (network.CreateResponse, error) {
	if m.networkCreateFunc != nil {
		return m.networkCreateFunc(ctx, name, options)
	}
	return network.CreateResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) NetworkDisconnect(ctx context.Context, networkID, containerID string, force bool) error {
	if m.networkDisconnectFunc != nil {
		return m.networkDisconnectFunc(ctx, networkID, containerID, force)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) NetworkInspect(ctx context.Context, networkID string, options network.InspectOptions) (network.Inspect, error) {
	if m.networkInspectFunc != nil {
		return m.networkInspectFunc(ctx, networkID, options)
	}
	return network.Inspect{}, errors.New("not implemented")
}

func (m *mockAPIClient) NetworkList(ctx context.Context, options network.ListOptions) ([]network.Summary, error) {
	if m.networkListFunc != nil {
		return m.networkListFunc(ctx, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) NetworkRemove(ctx context.Context, networkID string) error {
	if m.networkRemoveFunc != nil {
		return m.networkRemoveFunc(ctx, networkID)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) NetworksPrune(ctx context.Context, pruneFilter filters.Args) (network.PruneReport, error) {
	if m.networksPruneFunc != nil {
		return m.networksPruneFunc(ctx, pruneFilter)
	}
	return network.PruneReport{}, errors.New("not implemented")
}

func (m *mockAPIClient) VolumeCreate(ctx context.Context, options volume.CreateOptions) (volume.Volume, error) {
	if m.volumeCreateFunc != nil {
		return m.volumeCreateFunc(ctx, options)
	}
	return volume.Volume{}, errors.New("not implemented")
}

func (m *mockAPIClient) VolumeInspect(ctx context.Context, volumeID string) (volume.Volume, error) {
	if m.volumeInspectFunc != nil {
		return m.volumeInspectFunc(ctx, volumeID)
	}
	return volume.Volume{}, errors.New("not implemented")
}

func (m *mockAPIClient) VolumeList(ctx context.Context, options volume.ListOptions) (volume.ListResponse, error) {
	if m.volumeListFunc != nil {
		return m.volumeListFunc(ctx, options)
	}
	return volume.ListResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) VolumeRemove(ctx context.Context, volumeID string, force bool) error {
	if m.volumeRemoveFunc != nil {
		return m.volumeRemoveFunc(ctx, volumeID, force)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) VolumesPrune(ctx context.Context, pruneFilter filters.Args) (volume.PruneReport, error) {
	if m.volumesPruneFunc != nil {
		return m.volumesPruneFunc(ctx, pruneFilter)
	}
	return volume.PruneReport{}, errors.New("not implemented")
}

func (m *mockAPIClient) SwarmInit(ctx context.Context, req swarm.InitRequest) (string, error) {
	if m.swarmInitFunc != nil {
		return m.swarmInitFunc(ctx, req)
	}
	return "", errors.New("not implemented")
}

func (m *mockAPIClient) SwarmJoin(ctx context.Context, req swarm.JoinRequest) error {
	if m.swarmJoinFunc != nil {
		return m.swarmJoinFunc(ctx, req)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) SwarmGetUnlockKey(ctx context.Context) (swarm.UnlockKeyResponse, error) {
	if m.swarmGetUnlockKeyFunc != nil {
		return m.swarmGetUnlockKeyFunc(ctx)
	}
	return swarm.UnlockKeyResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) SwarmUnlock(ctx context.Context, req swarm.UnlockRequest) error {
	if m.swarmUnlockFunc != nil {
		return m.swarmUnlockFunc(ctx, req)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) SwarmLeave(ctx context.Context, force bool) error {
	if m.swarmLeaveFunc != nil {
		return m.swarmLeaveFunc(ctx, force)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) SwarmInspect(ctx context.Context) (swarm.Swarm, error) {
	if m.swarmInspectFunc != nil {
		return m.swarmInspectFunc(ctx)
	}
	return swarm.Swarm{}, errors.New("not implemented")
}

func (m *mockAPIClient) SwarmUpdate(ctx context.Context, version swarm.Version, spec swarm.Spec, flags swarm.UpdateFlags) error {
	if m.swarmUpdateFunc != nil {
		return m.swarmUpdateFunc(ctx, version, spec, flags)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) NodeInspectWithRaw(ctx context.Context, nodeID string) (swarm.Node, []byte, error) {
	if m.nodeInspectWithRawFunc != nil {
		return m.nodeInspectWithRawFunc(ctx, nodeID)
	}
	return swarm.Node{}, nil, errors.New("not implemented")
}

func (m *mockAPIClient) NodeList(ctx context.Context, options swarm.NodeListOptions) ([]swarm.Node, error) {
	if m.nodeListFunc != nil {
		return m.nodeListFunc(ctx, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) NodeRemove(ctx context.Context, nodeID string, options swarm.NodeRemoveOptions) error {
	if m.nodeRemoveFunc != nil {
		return m.nodeRemoveFunc(ctx, nodeID, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) NodeUpdate(ctx context.Context, nodeID string, version swarm.Version, node swarm.NodeSpec) error {
	if m.nodeUpdateFunc != nil {
		return m.nodeUpdateFunc(ctx, nodeID, version, node)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ServiceCreate(ctx context.Context, service swarm.ServiceSpec, options swarm.ServiceCreateOptions) (swarm.ServiceCreateResponse, error) {
	if m.serviceCreateFunc != nil {
		return m.serviceCreateFunc(ctx, service, options)
	}
	return swarm.ServiceCreateResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ServiceInspectWithRaw(ctx context.Context, serviceID string, options swarm.ServiceInspectOptions) (swarm.Service, []byte, error) {
	if m.serviceInspectWithRawFunc != nil {
		return m.serviceInspectWithRawFunc(ctx, serviceID, options)
	}
	return swarm.Service{}, nil, errors.New("not implemented")
}

func (m *mockAPIClient) ServiceList(ctx context.Context, options swarm.ServiceListOptions) ([]swarm.Service, error) {
	if m.serviceListFunc != nil {
		return m.serviceListFunc(ctx, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ServiceRemove(ctx context.Context, serviceID string) error {
	if m.serviceRemoveFunc != nil {
		return m.serviceRemoveFunc(ctx, serviceID)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ServiceUpdate(ctx context.Context, serviceID string, version swarm.Version, service swarm.ServiceSpec, options swarm.ServiceUpdateOptions) (swarm.ServiceUpdateResponse, error) {
	if m.serviceUpdateFunc != nil {
		return m.serviceUpdateFunc(ctx, serviceID, version, service, options)
	}
	return swarm.ServiceUpdateResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ServiceLogs(ctx context.Context, serviceID string, options container.LogsOptions) (io.ReadCloser, error) {
	if m.serviceLogsFunc != nil {
		return m.serviceLogsFunc(ctx, serviceID, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) TaskList(ctx context.Context, options swarm.TaskListOptions) ([]swarm.Task, error) {
	if m.taskListFunc != nil {
		return m.taskListFunc(ctx, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) SecretList(ctx context.Context, options swarm.SecretListOptions) ([]swarm.Secret, error) {
	if m.secretListFunc != nil {
		return m.secretListFunc(ctx, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) SecretCreate(ctx context.Context, secret swarm.SecretSpec) (swarm.SecretCreateResponse, error) {
	if m.secretCreateFunc != nil {
		return m.secretCreateFunc(ctx, secret)
	}
	return swarm.SecretCreateResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) SecretRemove(ctx context.Context, id string) error {
	if m.secretRemoveFunc != nil {
		return m.secretRemoveFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) SecretInspectWithRaw(ctx context.Context, name string) (swarm.Secret, []byte, error) {
	if m.secretInspectWithRawFunc != nil {
		return m.secretInspectWithRawFunc(ctx, name)
	}
	return swarm.Secret{}, nil, errors.New("not implemented")
}

func (m *mockAPIClient) ConfigList(ctx context.Context, options swarm.ConfigListOptions) ([]swarm.Config, error) {
	if m.configListFunc != nil {
		return m.configListFunc(ctx, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) ConfigCreate(ctx context.Context, config swarm.ConfigSpec) (swarm.ConfigCreateResponse, error) {
	if m.configCreateFunc != nil {
		return m.configCreateFunc(ctx, config)
	}
	return swarm.ConfigCreateResponse{}, errors.New("not implemented")
}

func (m *mockAPIClient) ConfigRemove(ctx context.Context, id string) error {
	if m.configRemoveFunc != nil {
		return m.configRemoveFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) ConfigInspectWithRaw(ctx context.Context, name string) (swarm.Config, []byte, error) {
	if m.configInspectWithRawFunc != nil {
		return m.configInspectWithRawFunc(ctx, name)
	}
	return swarm.Config{}, nil, errors.New("not implemented")
}

func (m *mockAPIClient) PluginList(ctx context.Context, filter filters.Args) (types.PluginsListResponse, error) {
	if m.pluginListFunc != nil {
		return m.pluginListFunc(ctx, filter)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) PluginRemove(ctx context.Context, name string, options types.PluginRemoveOptions) error {
	if m.pluginRemoveFunc != nil {
		return m.pluginRemoveFunc(ctx, name, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) PluginEnable(ctx context.Context, name string, options types.PluginEnableOptions) error {
	if m.pluginEnableFunc != nil {
		return m.pluginEnableFunc(ctx, name, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) PluginDisable(ctx context.Context, name string, options types.PluginDisableOptions) error {
	if m.pluginDisableFunc != nil {
		return m.pluginDisableFunc(ctx, name, options)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) PluginInstall(ctx context.Context, name string, options types.PluginInstallOptions) (io.ReadCloser, error) {
	if m.pluginInstallFunc != nil {
		return m.pluginInstallFunc(ctx, name, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) PluginUpgrade(ctx context.Context, name string, options types.PluginInstallOptions) (io.ReadCloser, error) {
	if m.pluginUpgradeFunc != nil {
		return m.pluginUpgradeFunc(ctx, name, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) PluginPush(ctx context.Context, name string, registryAuth string) (io.ReadCloser, error) {
	if m.pluginPushFunc != nil {
		return m.pluginPushFunc(ctx, name, registryAuth)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAPIClient) PluginSet(ctx context.Context, name string, args []string) error {
	if m.pluginSetFunc != nil {
		return m.pluginSetFunc(ctx, name, args)
	}
	return errors.New("not implemented")
}

func (m *mockAPIClient) PluginInspectWithRaw(ctx context.Context, name string) (*types.Plugin, []byte, error) {
	if m.pluginInspectWithRawFunc != nil {
		return m.pluginInspectWithRawFunc(ctx, name)
	}
	return nil, nil, errors.New("not implemented")
}

func (m *mockAPIClient) DistributionInspect(ctx context.Context, imageRef, encodedRegistryAuth string) (registry.DistributionInspect, error) {
	if m.distributionInspectFunc != nil {
		return m.distributionInspectFunc(ctx, imageRef, encodedRegistryAuth)
	}
	return registry.DistributionInspect{}, errors.New("not implemented")
}

func (m *mockAPIClient) Events(ctx context.Context, options events.ListOptions) (<-chan events.Message, <-chan error) {
	if m.eventsFunc != nil {
		return m.eventsFunc(ctx, options)
	}
	messageCh := make(chan events.Message, 1)
	errCh := make(chan error, 1)
	errCh <- errors.New("not implemented")
	return messageCh, errCh
}

func (m *mockAPIClient) Info(ctx context.Context) (system.Info, error) {
	if m.infoFunc != nil {
		return m.infoFunc(ctx)
	}
	return system.Info{}, errors.New("not implemented")
}

func (m *mockAPIClient) RegistryLogin(ctx context.Context, auth registry.AuthConfig) (registry.AuthenticateOKBody, error) {
	if m.registryLoginFunc != nil {
		return m.registryLoginFunc(ctx, auth)
	}
	return registry.AuthenticateOKBody{}, errors.New("not implemented")
}

func (m *mockAPIClient) DiskUsage(ctx context.Context, options types.DiskUsageOptions) (types.DiskUsage, error) {
	if m.diskUsageFunc != nil {
		return m.diskUsageFunc(ctx, options)
	}
	return types.DiskUsage{}, errors.New("not implemented")
}

func (m *mockAPIClient) Ping(ctx context.Context) (types.Ping, error) {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return types.Ping{}, errors.New("not implemented")
}

func (m *mockAPIClient) ClientVersion() string {
	if m.clientVersionFunc != nil {
		return m.clientVersionFunc()
	}
	return ""
}

func (m *mockAPIClient) DaemonHost() string {
	if m.daemonHostFunc != nil {
		return m.daemonHostFunc()
	}
	return ""
}

func (m *mockAPIClient) HTTPClient() *http.Client {
	if m.httpClientFunc != nil {
		return m.httpClientFunc()
	}
	return nil
}

func (m *mockAPIClient) ServerVersion(ctx context.Context) (types.Version, error) {
	if m.serverVersionFunc != nil {
		return m.serverVersionFunc(ctx)
	}
	return types.Version{}, errors.New("not implemented")
}

func (m *mockAPIClient) NegotiateAPIVersion(ctx context.Context) {
	if m.negotiateAPIVersionFunc != nil {
		m.negotiateAPIVersionFunc(ctx)
	}
}

func (m *mockAPIClient) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}
