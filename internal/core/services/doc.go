// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (adapters).
//
//   - ConnectorFactory: path classification and adapter dispatch
//   - ConnectionService: opens connectors, downgrading unsupported formats
//   - ReportService: derives persons, donuts and summaries from documents
//   - SettingsService: typed access to the config store
package services
