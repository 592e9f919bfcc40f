package response

// Response is the JSON envelope shared by every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func Err(errText, message string) Response {
	return Response{Success: false, Error: errText, Message: message}
}

type ChatTestResponse struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
}

type HealthResponse struct {
	Status        string      `json:"status"`
	Timestamp     string      `json:"timestamp"`
	UptimeSeconds float64     `json:"uptime"`
	Memory        MemoryStats `json:"memory"`
	Environment   string      `json:"environment"`
}

type MemoryStats struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
}

type APIIndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
