package constant

type contextKey string

const SessionKey contextKey = "session"

const WorkspaceHeader = "X-Workspace-ID"
