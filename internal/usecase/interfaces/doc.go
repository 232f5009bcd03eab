// Package interfaces holds the ports the use cases depend on.
package interfaces

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/user_repository_interface.go -package=mock_interfaces
//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_interface.go -package=mock_interfaces
//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_interface.go -package=mock_interfaces
//go:generate mockgen -source=contact_repository_interface.go -destination=mocks/contact_repository_interface.go -package=mock_interfaces
//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface.go -package=mock_interfaces
//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface.go -package=mock_interfaces
//go:generate mockgen -source=scheduler_interface.go -destination=mocks/scheduler_interface.go -package=mock_interfaces
//go:generate mockgen -source=token_issuer_interface.go -destination=mocks/token_issuer_interface.go -package=mock_interfaces
//go:generate mockgen -source=password_hasher_interface.go -destination=mocks/password_hasher_interface.go -package=mock_interfaces
//go:generate mockgen -source=quote_document_interface.go -destination=mocks/quote_document_interface.go -package=mock_interfaces
