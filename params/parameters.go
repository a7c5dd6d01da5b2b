// SPDX-License-Identifier: MIT
// Package: edmindex/params
//
// parameters.go — the raw Parameters value and its defaults.

package params

// Parameters is the raw, user-supplied configuration. It is a value type:
// Validate never modifies the caller's copy.
//
// Range strings use 1-based inclusive (start, stop) pairs separated by
// spaces, tabs or commas. Path fields are carried for consumers and are not
// interpreted here.
type Parameters struct {
	Method Method `yaml:"method" json:"method"`

	PathIn      string `yaml:"path_in,omitempty" json:"path_in,omitempty"`
	DataFile    string `yaml:"data_file,omitempty" json:"data_file,omitempty"`
	PathOut     string `yaml:"path_out,omitempty" json:"path_out,omitempty"`
	PredictFile string `yaml:"predict_file,omitempty" json:"predict_file,omitempty"`

	Lib  string `yaml:"lib" json:"lib"`
	Pred string `yaml:"pred" json:"pred"`

	E               int     `yaml:"E" json:"E"`
	Tp              int     `yaml:"Tp" json:"Tp"`
	Knn             int     `yaml:"knn" json:"knn"`
	Tau             int     `yaml:"tau" json:"tau"`
	Theta           float64 `yaml:"theta" json:"theta"`
	ExclusionRadius int     `yaml:"exclusion_radius" json:"exclusion_radius"`

	Columns string `yaml:"columns" json:"columns"`
	Target  string `yaml:"target" json:"target"`

	Embedded     bool `yaml:"embedded" json:"embedded"`
	ConstPredict bool `yaml:"const_predict" json:"const_predict"`
	Verbose      bool `yaml:"verbose" json:"verbose"`

	SMapFile  string `yaml:"smap_file,omitempty" json:"smap_file,omitempty"`
	BlockFile string `yaml:"block_file,omitempty" json:"block_file,omitempty"`

	// Multiview.
	MultiviewEnsemble      int  `yaml:"multiview_ensemble" json:"multiview_ensemble"`
	MultiviewD             int  `yaml:"multiview_D" json:"multiview_D"`
	MultiviewTrainLib      bool `yaml:"multiview_train_lib" json:"multiview_train_lib"`
	MultiviewExcludeTarget bool `yaml:"multiview_exclude_target" json:"multiview_exclude_target"`

	// Cross mapping.
	LibSizes    string `yaml:"lib_sizes" json:"lib_sizes"`
	Samples     int    `yaml:"samples" json:"samples"`
	RandomLib   bool   `yaml:"random_lib" json:"random_lib"`
	Replacement bool   `yaml:"replacement" json:"replacement"`
	Seed        uint64 `yaml:"seed" json:"seed"`
	IncludeData bool   `yaml:"include_data" json:"include_data"`
}

// Default values.
const (
	DefaultTau               = -1
	DefaultRandomLib         = true
	DefaultMultiviewTrainLib = true
)

// Default returns Parameters with every documented default applied.
// Method is None and must be chosen by the caller.
func Default() Parameters {
	return Parameters{
		Tau:               DefaultTau,
		RandomLib:         DefaultRandomLib,
		MultiviewTrainLib: DefaultMultiviewTrainLib,
	}
}
