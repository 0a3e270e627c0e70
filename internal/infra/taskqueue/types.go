package taskqueue

import "time"

// CoverageAlertTask notifies the dispatcher that a served planning view
// contained an under-covered day.
type CoverageAlertTask struct {
	TaskID     string    `json:"-"`
	ScheduleAt time.Time `json:"-"`

	Day             string `json:"day"`
	Severity        string `json:"severity"`
	MissingTranches int    `json:"missing_tranches"`
	TotalTranches   int    `json:"total_tranches"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

// Wire types of the local HTTP task-queue service, which mimics the Cloud
// Tasks request shape.
type queueTaskRequest struct {
	Task queueTask `json:"task"`
}

type queueTask struct {
	HTTPRequest  queueHTTPRequest `json:"httpRequest"`
	ScheduleTime string           `json:"scheduleTime,omitempty"`
}

type queueHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type queueTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
