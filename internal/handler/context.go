package handler

type ContextKey string

var (
	RoleCtxKey             ContextKey = "role"
	SubCtxKey              ContextKey = "sub"
	MyInfoCtx              ContextKey = "myInfo"
	UserInfoCtx            ContextKey = "userInfo"
	WorkerProfileCtx       ContextKey = "workerProfile"
	RestaurantCtx          ContextKey = "restaurant"
	JobPostingCtx          ContextKey = "jobPosting"
	ShiftCtx               ContextKey = "shift"
	ApplicationCtx         ContextKey = "application"
	VerificationRequestCtx ContextKey = "verificationRequest"
	ConversationCtx        ContextKey = "conversation"
)
