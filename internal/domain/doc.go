// Package domain models yearly drought statistics for the Marathwada region
// of Maharashtra, India.
//
// # Data Source
//
// The dataset is a per-year CSV distilled from India Meteorological Department
// (IMD) rainfall records. Each row carries the share of the region falling into
// each Standardized Precipitation Index (SPI) class for one monsoon year, plus
// a URL to a pre-rendered drought map of the region for that year.
//
// # CSV Conventions
//
// Required columns (header names are exact, including spaces and underscores):
//
//	year               four-digit year, unique per row
//	Map Images Left    URL of the rendered drought map for the year
//	Extreme_Drought    percentage of region area, one per category
//	Severe_Drought
//	Moderate_Drought
//	Extremely_Wet
//	Moderately_Wet
//	Near_Normal
//
// Category shares are non-negative reals. They usually sum to ~100 but the
// pipeline does not enforce that; derived views must not assume it.
//
// # Category Taxonomy
//
// The six SPI classes carry fixed presentation attributes so every view of the
// data (pie charts, metric tiles, legends) agrees on color and ordering:
//
//	Extreme_Drought    #8B0000  dark red     white text
//	Severe_Drought     #FF4500  orange red   white text
//	Moderate_Drought   #FFA500  orange       black text
//	Extremely_Wet      #0000FF  blue         white text
//	Moderately_Wet     #4169E1  royal blue   black text
//	Near_Normal        #90EE90  light green  black text
//
// Chart order is fixed regardless of values: droughts from most to least
// severe, then wet classes from most to least wet, then near normal. The
// summary grid splits the same order into a drought row and a wet/normal row.
package domain
