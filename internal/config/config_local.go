//go:build !gcloud

package config

// Validate accepts an empty AlertTasksURL: without a queue endpoint the
// service runs with alert registration disabled.
func (c *TaskQueueConfig) Validate() error {
	return nil
}
