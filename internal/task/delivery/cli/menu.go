package cli

// Menu selections.
const (
	choiceAdd = iota + 1
	choiceView
	choiceMarkDone
	choiceDelete
	choiceSearch
	choiceSortAlpha
	choiceSortDeadline
	choiceSave
	choiceExit
)

const menuText = `
===== ADVANCED TO-DO LIST MENU =====
1. Add Task
2. View Tasks
3. Mark Task as Done
4. Delete Task
5. Search Task
6. Sort Tasks Alphabetically
7. Sort Tasks by Due Date
8. Save Tasks
9. Exit
`

const (
	msgAdded         = "Task added successfully!"
	msgInvalidDate   = "Invalid date format. Task not added."
	msgMarkedDone    = "Task marked as done!"
	msgDeleted       = "Task deleted successfully!"
	msgInvalidIndex  = "Invalid task number."
	msgSortedAlpha   = "Tasks sorted alphabetically!"
	msgSortedDue     = "Tasks sorted by deadline!"
	msgSaved         = "Tasks saved successfully!"
	msgInvalidChoice = "Invalid choice. Try again."
	msgGoodbye       = "Exiting... Goodbye!"
	msgReadFailed    = "Failed to read input: "
)
