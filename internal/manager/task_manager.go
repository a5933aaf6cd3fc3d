package manager

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	addTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todoapp_tasks_added_total",
			Help: "Total number of AddTask operations",
		},
		[]string{"status"},
	)

	updateTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todoapp_tasks_updated_total",
			Help: "Total number of UpdateTask operations",
		},
		[]string{"status"},
	)

	deleteTaskCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todoapp_tasks_deleted_total",
			Help: "Total number of DeleteTask operations",
		},
		[]string{"status"},
	)

	setCompletedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todoapp_tasks_completion_set_total",
			Help: "Total number of SetCompleted operations",
		},
		[]string{"status"},
	)

	tasksInList = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "todoapp_tasks_in_list",
			Help: "Current number of tasks in the list",
		},
	)

	taskDescLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "todoapp_task_desc_length_bytes",
			Help:    "Length distribution of task descriptions",
			Buckets: []float64{50, 100, 500, 1000},
		},
	)

	addTaskDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "todoapp_add_task_duration_seconds",
			Help:    "Duration of AddTask operation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	updateTaskDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "todoapp_update_task_duration_seconds",
			Help:    "Duration of UpdateTask operation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Ошибки менеджера. Вызывающий код различает их через errors.Is,
// текст сообщения для пользователя формирует презентационный слой.
var (
	ErrEmptyDescription = errors.New("описание задачи обязательно")
	ErrTaskNotFound     = errors.New("задача не найдена")
)

type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// String выводит задачу в консольном формате: "1. [✓] Купить молоко".
func (t Task) String() string {
	status := "○"
	if t.Completed {
		status = "✓"
	}
	return fmt.Sprintf("%d. [%s] %s", t.ID, status, t.Description)
}

// TaskManager хранит задачи в памяти на время одной сессии.
// ID выдаются монотонно начиная с 1 и никогда не переиспользуются,
// даже после удаления задачи.
type TaskManager struct {
	mu     sync.Mutex
	tasks  []Task
	lastID int
}

func NewTaskManager() *TaskManager {
	return &TaskManager{}
}

func (tm *TaskManager) AddTask(description string) (Task, error) {
	startTime := time.Now()
	defer func() {
		addTaskDuration.Observe(time.Since(startTime).Seconds())
	}()

	description = strings.TrimSpace(description)
	if description == "" {
		addTaskCount.WithLabelValues("error").Inc()
		return Task{}, ErrEmptyDescription
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.lastID++
	task := Task{
		ID:          tm.lastID,
		Description: description,
	}
	tm.tasks = append(tm.tasks, task)

	addTaskCount.WithLabelValues("success").Inc()
	taskDescLength.Observe(float64(len(description)))
	tasksInList.Set(float64(len(tm.tasks)))

	return task, nil
}

// GetAllTasks возвращает копию списка в порядке добавления.
// Копия нужна, чтобы вызывающий код не мог изменить внутреннее состояние.
func (tm *TaskManager) GetAllTasks() []Task {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tasks := make([]Task, len(tm.tasks))
	copy(tasks, tm.tasks)
	return tasks
}

func (tm *TaskManager) GetTask(id int) (Task, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	i := tm.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("ID %d: %w", id, ErrTaskNotFound)
	}
	return tm.tasks[i], nil
}

// UpdateTask меняет описание задачи. Порядок проверок фиксирован:
// сначала существование ID, потом валидация нового описания.
func (tm *TaskManager) UpdateTask(id int, newDescription string) (Task, error) {
	startTime := time.Now()
	defer func() {
		updateTaskDuration.Observe(time.Since(startTime).Seconds())
	}()

	tm.mu.Lock()
	defer tm.mu.Unlock()

	i := tm.indexOf(id)
	if i < 0 {
		updateTaskCount.WithLabelValues("error").Inc()
		return Task{}, fmt.Errorf("ID %d: %w", id, ErrTaskNotFound)
	}

	newDescription = strings.TrimSpace(newDescription)
	if newDescription == "" {
		updateTaskCount.WithLabelValues("error").Inc()
		return Task{}, ErrEmptyDescription
	}

	tm.tasks[i].Description = newDescription

	updateTaskCount.WithLabelValues("success").Inc()
	taskDescLength.Observe(float64(len(newDescription)))

	return tm.tasks[i], nil
}

func (tm *TaskManager) DeleteTask(id int) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	i := tm.indexOf(id)
	if i < 0 {
		deleteTaskCount.WithLabelValues("error").Inc()
		return fmt.Errorf("ID %d: %w", id, ErrTaskNotFound)
	}

	// Счетчик lastID не трогаем: ID удаленной задачи не переиспользуется.
	tm.tasks = append(tm.tasks[:i], tm.tasks[i+1:]...)

	deleteTaskCount.WithLabelValues("success").Inc()
	tasksInList.Set(float64(len(tm.tasks)))

	return nil
}

// SetCompleted выставляет статус выполнения. Операция идемпотентна:
// повторная установка того же статуса не является ошибкой.
func (tm *TaskManager) SetCompleted(id int, completed bool) (Task, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	i := tm.indexOf(id)
	if i < 0 {
		setCompletedCount.WithLabelValues("error").Inc()
		return Task{}, fmt.Errorf("ID %d: %w", id, ErrTaskNotFound)
	}

	tm.tasks[i].Completed = completed

	setCompletedCount.WithLabelValues("success").Inc()

	return tm.tasks[i], nil
}

// indexOf ищет позицию задачи по ID. Вызывать только под mu.
func (tm *TaskManager) indexOf(id int) int {
	for i := range tm.tasks {
		if tm.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
