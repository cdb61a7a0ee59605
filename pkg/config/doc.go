// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package config loads the settings that shape a name replacement run.

	┌───────────────┐     ┌──────────────┐     ┌──────────────┐
	│  config file  │ ──► │    Parser    │ ──► │   Validate   │
	│ yaml/hcl/json │     │ (by extension)│    │ fill defaults│
	└───────────────┘     └──────────────┘     └──────────────┘

🎯 Purpose:
- Reads profile settings from YAML, HCL or JSON
- Fills anything left unset with the built-in defaults
- Rejects widths, byte orders and suffixes that cannot work

⚙️ Settings:

	extension          profile file extension (".apd")
	backup_suffix      appended to the profile path for the backup (".backup")
	pending_suffix     appended for the staged copy (".replaced")
	byte_order         "little" or "big" UTF-16 (little)
	first_name_width   first name slot, in UTF-16 units (10)
	second_name_width  second name slot, in UTF-16 units (19)

💡 Example:

	cfg, err := config.LoadOrDefault(ctx, config.DefaultPath, false)
	if err != nil {
		return err
	}
	limits := cfg.Limits()

HCL files may refer to the built-ins through the defaults object:

	second_name_width = defaults.second_name_width - 1
*/
package config
