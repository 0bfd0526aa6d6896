package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what gets
// injected into the handlers.
type ServiceContainer struct {
	User  UserSvcFacade
	Token TokenSvcFacade
	Media MediaSvcFacade
}
