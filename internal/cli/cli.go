package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo-console/internal/manager"
)

// Длинные описания менеджер принимает, но консоль предупреждает о них.
const descriptionWarnLength = 1000

// CLI гоняет главное меню приложения поверх произвольных reader/writer,
// чтобы цикл можно было тестировать без терминала.
type CLI struct {
	tm  *manager.TaskManager
	in  *bufio.Scanner
	out io.Writer
}

func New(tm *manager.TaskManager, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		tm:  tm,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run показывает меню и выполняет выбранные операции до пункта Exit
// или до конца входного потока.
func (c *CLI) Run() {
	for {
		c.printMenu()

		line, ok := c.readLine()
		if !ok {
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > 7 {
			fmt.Fprintln(c.out, "\nInvalid choice. Please select a number between 1 and 7.")
			continue
		}

		switch choice {
		case 1:
			c.handleAddTask()
		case 2:
			c.handleViewTasks()
		case 3:
			c.handleUpdateTask()
		case 4:
			c.handleDeleteTask()
		case 5:
			c.handleSetCompleted(true)
		case 6:
			c.handleSetCompleted(false)
		case 7:
			fmt.Fprintln(c.out, "\nThank you for using the Todo Application. Goodbye!")
			return
		}
	}
}

func (c *CLI) printMenu() {
	divider := strings.Repeat("=", 40)
	fmt.Fprintln(c.out, "\n"+divider)
	fmt.Fprintln(c.out, "TODO APPLICATION - MAIN MENU")
	fmt.Fprintln(c.out, divider)
	fmt.Fprintln(c.out, "1. Add Task")
	fmt.Fprintln(c.out, "2. View Task List")
	fmt.Fprintln(c.out, "3. Update Task")
	fmt.Fprintln(c.out, "4. Delete Task")
	fmt.Fprintln(c.out, "5. Mark Task Complete")
	fmt.Fprintln(c.out, "6. Mark Task Incomplete")
	fmt.Fprintln(c.out, "7. Exit")
	fmt.Fprintln(c.out, divider)
	fmt.Fprint(c.out, "Choose an option (1-7): ")
}

func (c *CLI) handleAddTask() {
	fmt.Fprintln(c.out, "\n--- ADD TASK ---")

	description, ok := c.prompt("Enter task description: ")
	if !ok {
		return
	}
	if len(description) > descriptionWarnLength {
		fmt.Fprintf(c.out, "Warning: description is longer than %d characters.\n", descriptionWarnLength)
	}

	task, err := c.tm.AddTask(description)
	if err != nil {
		c.printError(err, 0)
		return
	}
	fmt.Fprintf(c.out, "Task added successfully with ID %d: %s\n", task.ID, task.Description)
}

func (c *CLI) handleViewTasks() {
	fmt.Fprintln(c.out, "\n--- VIEW TASK LIST ---")

	tasks := c.tm.GetAllTasks()
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "Your task list is empty.")
		return
	}

	fmt.Fprintf(c.out, "Total tasks: %d\n", len(tasks))
	for _, task := range tasks {
		fmt.Fprintln(c.out, task)
	}
}

func (c *CLI) handleUpdateTask() {
	fmt.Fprintln(c.out, "\n--- UPDATE TASK ---")

	if len(c.tm.GetAllTasks()) == 0 {
		fmt.Fprintln(c.out, "Your task list is empty. Cannot update any tasks.")
		return
	}

	id, ok := c.readTaskID("Enter task ID to update: ")
	if !ok {
		return
	}

	task, err := c.tm.GetTask(id)
	if err != nil {
		c.printError(err, id)
		return
	}
	fmt.Fprintf(c.out, "Current task: %s\n", task)

	description, ok := c.prompt("Enter new task description: ")
	if !ok {
		return
	}
	if len(description) > descriptionWarnLength {
		fmt.Fprintf(c.out, "Warning: description is longer than %d characters.\n", descriptionWarnLength)
	}

	updated, err := c.tm.UpdateTask(id, description)
	if err != nil {
		c.printError(err, id)
		return
	}
	fmt.Fprintf(c.out, "Task %d updated successfully: %s\n", updated.ID, updated.Description)
}

func (c *CLI) handleDeleteTask() {
	fmt.Fprintln(c.out, "\n--- DELETE TASK ---")

	if len(c.tm.GetAllTasks()) == 0 {
		fmt.Fprintln(c.out, "Your task list is empty. Cannot delete any tasks.")
		return
	}

	id, ok := c.readTaskID("Enter task ID to delete: ")
	if !ok {
		return
	}

	task, err := c.tm.GetTask(id)
	if err != nil {
		c.printError(err, id)
		return
	}
	fmt.Fprintf(c.out, "Task to delete: %s\n", task)

	confirm, ok := c.prompt("Are you sure you want to delete this task? (y/N): ")
	if !ok {
		return
	}
	switch strings.ToLower(confirm) {
	case "y", "yes":
		if err := c.tm.DeleteTask(id); err != nil {
			c.printError(err, id)
			return
		}
		fmt.Fprintf(c.out, "Task %d deleted successfully.\n", id)
	default:
		fmt.Fprintln(c.out, "Task deletion cancelled.")
	}
}

func (c *CLI) handleSetCompleted(completed bool) {
	state := "complete"
	if !completed {
		state = "incomplete"
	}

	fmt.Fprintf(c.out, "\n--- MARK TASK %s ---\n", strings.ToUpper(state))

	if len(c.tm.GetAllTasks()) == 0 {
		fmt.Fprintf(c.out, "Your task list is empty. No tasks to mark as %s.\n", state)
		return
	}

	id, ok := c.readTaskID(fmt.Sprintf("Enter task ID to mark as %s: ", state))
	if !ok {
		return
	}

	task, err := c.tm.GetTask(id)
	if err != nil {
		c.printError(err, id)
		return
	}
	if task.Completed == completed {
		fmt.Fprintf(c.out, "Task %d is already marked as %s.\n", id, state)
		return
	}

	updated, err := c.tm.SetCompleted(id, completed)
	if err != nil {
		c.printError(err, id)
		return
	}
	fmt.Fprintf(c.out, "Task %d marked as %s: %s\n", updated.ID, state, updated.Description)
}

// readTaskID запрашивает ID задачи; менеджер никогда не видит
// нечисловой ввод.
func (c *CLI) readTaskID(label string) (int, bool) {
	line, ok := c.prompt(label)
	if !ok {
		return 0, false
	}

	id, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(c.out, "Error: Task ID must be a number.")
		return 0, false
	}
	return id, true
}

func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	line, ok := c.readLine()
	return strings.TrimSpace(line), ok
}

func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// printError переводит ошибку менеджера в сообщение для пользователя.
// Вид ошибки определяется через errors.Is, без разбора текста.
func (c *CLI) printError(err error, id int) {
	switch {
	case errors.Is(err, manager.ErrEmptyDescription):
		fmt.Fprintln(c.out, "Error: Task description cannot be empty.")
	case errors.Is(err, manager.ErrTaskNotFound):
		fmt.Fprintf(c.out, "Error: Task with ID %d not found.\n", id)
	default:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	}
}
