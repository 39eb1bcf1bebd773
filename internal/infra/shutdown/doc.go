// Package shutdown runs cleanup when vmadmin exits.
//
// Usage:
//
//	h := shutdown.NewHandler(5 * time.Second)
//	ctx, stop := h.NotifyContext(context.Background())
//	defer stop()
//	h.OnShutdown(dal.Close)
//	defer h.Run()
//
// SIGINT and SIGTERM cancel ctx, which ends the shell; the hooks then run
// in reverse order of registration.
package shutdown
