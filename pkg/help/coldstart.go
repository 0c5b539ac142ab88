package help

const ColdstartYAML = `# bias-bars Quick Start

input_formats:
  reviews: |
    header line (skipped)
    <rating>,<W|M>,<review text>
  disease: |
    <location>,<n1>,<n2>,<n3>,<n4>,<n5>,<n6>,<n7>   # cumulative infections

rating_buckets:
  low: "rating < 2.5"
  medium: "2.5 < rating <= 3.5"
  high: "everything else, including exactly 2.5"

commands:
  print_all_words: |
    bias-bars print data/full-data.txt

  search: |
    bias-bars search oo data/full-data.txt
    bias-bars search --ignore-case OO data/full-data.txt

  lookup_frequencies: |
    bias-bars lookup --format json brilliant

  plot: |
    bias-bars plot brilliant                    # terminal bars
    bias-bars plot --out brilliant.svg brilliant

  top_words: |
    bias-bars --skip-stopwords top --gender W --bucket low -n 20
    bias-bars top --compact -n 5

  rating_stats: |
    bias-bars stats data/full-data.txt

  disease: |
    bias-bars disease load data/disease1.txt
    bias-bars disease daily data/disease1.txt

config_file: |
  # bias-bars.yaml
  reviews_file: data/full-data.txt
  disease_file: data/disease1.txt
  ingest:
    fold_case: true
    skip_stopwords: false
  chart:
    width: 1000
    height: 600
  logging:
    level: info
    format: text
`
