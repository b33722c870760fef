package port

// Dispatcher serializes work onto the shell's single-threaded update loop.
// All layout and tab mutations run on that loop; background units of work
// (content loads, image decodes) marshal their completion through Dispatch
// as the last step.
type Dispatcher interface {
	// Dispatch runs fn on the update loop as soon as possible.
	Dispatch(fn func())

	// Schedule runs fn on a later turn of the update loop, after pending
	// state changes have settled. Used for explicit two-phase operations
	// such as opening the first file after a tree rebuild.
	Schedule(fn func())
}
